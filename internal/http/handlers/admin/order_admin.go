package admin

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solemart/storefront/internal/http/response"
	"github.com/solemart/storefront/internal/logger"
	"github.com/solemart/storefront/internal/queue"
	"github.com/solemart/storefront/internal/repository"
	"github.com/solemart/storefront/internal/service"
)

// ListOrders returns a filtered order page.
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListOrders(repository.OrderListFilter{
		OrderNo:       c.Query("order_no"),
		Status:        c.Query("status"),
		CustomerPhone: c.Query("customer_phone"),
		PaymentMethod: c.Query("payment_method"),
		Page:          page,
		PageSize:      pageSize,
	})
	if err != nil {
		response.Error(c, response.CodeInternal, "failed to load orders")
		return
	}
	response.SuccessWithPage(c, orders, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetOrder returns one order by order number.
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.OrderService.GetByOrderNo(c.Param("orderNo"))
	if err != nil {
		response.NotFound(c, "order not found")
		return
	}
	response.Success(c, order)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus applies a status change through the transition table.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "status is required")
		return
	}

	target, err := h.OrderService.GetByOrderNo(c.Param("orderNo"))
	if err != nil {
		response.NotFound(c, "order not found")
		return
	}

	order, err := h.OrderService.UpdateStatus(target.ID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			response.NotFound(c, "order not found")
		case errors.Is(err, service.ErrOrderStatusInvalid):
			response.BadRequest(c, "status transition not allowed")
		default:
			response.Error(c, response.CodeInternal, "failed to update order status")
		}
		return
	}

	if err := h.QueueClient.EnqueueOrderStatusNotify(queue.OrderStatusNotifyPayload{
		OrderID: order.ID,
		Status:  order.Status,
	}); err != nil {
		logger.Warnw("order_status_notify_enqueue_failed", "order_no", order.OrderNo, "error", err)
	}
	response.Success(c, order)
}
