package admin

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/solemart/storefront/internal/http/response"
	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/service"
)

type deliveryZoneRequest struct {
	Slug      string `json:"slug" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Fee       string `json:"fee" binding:"required"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

func (r deliveryZoneRequest) toModel() (*models.DeliveryZone, error) {
	fee, err := decimal.NewFromString(r.Fee)
	if err != nil || fee.IsNegative() {
		return nil, errors.New("invalid fee")
	}
	zone := &models.DeliveryZone{
		Slug:      r.Slug,
		Name:      r.Name,
		Fee:       models.NewMoneyFromDecimal(fee),
		SortOrder: r.SortOrder,
		IsActive:  true,
	}
	if r.IsActive != nil {
		zone.IsActive = *r.IsActive
	}
	return zone, nil
}

// ListDeliveryZones returns all zones including inactive ones.
func (h *Handler) ListDeliveryZones(c *gin.Context) {
	zones, err := h.DeliveryAdminService.List()
	if err != nil {
		response.Error(c, response.CodeInternal, "failed to load delivery zones")
		return
	}
	response.Success(c, zones)
}

// CreateDeliveryZone inserts a zone.
func (h *Handler) CreateDeliveryZone(c *gin.Context) {
	var req deliveryZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	zone, err := req.toModel()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.DeliveryAdminService.Create(c.Request.Context(), zone); err != nil {
		if errors.Is(err, service.ErrDeliveryZoneTaken) {
			response.BadRequest(c, "delivery zone slug already exists")
			return
		}
		response.Error(c, response.CodeInternal, "failed to create delivery zone")
		return
	}
	response.Success(c, zone)
}

// UpdateDeliveryZone saves a zone.
func (h *Handler) UpdateDeliveryZone(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid zone id")
		return
	}
	var req deliveryZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	zone, err := req.toModel()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	zone.ID = uint(id)
	if err := h.DeliveryAdminService.Update(c.Request.Context(), zone); err != nil {
		if errors.Is(err, service.ErrDeliveryZoneTaken) {
			response.BadRequest(c, "delivery zone slug already exists")
			return
		}
		response.Error(c, response.CodeInternal, "failed to update delivery zone")
		return
	}
	response.Success(c, zone)
}

// DeleteDeliveryZone removes a zone.
func (h *Handler) DeleteDeliveryZone(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid zone id")
		return
	}
	if err := h.DeliveryAdminService.Delete(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, response.CodeInternal, "failed to delete delivery zone")
		return
	}
	response.SuccessWithMsg(c, "delivery zone deleted", nil)
}
