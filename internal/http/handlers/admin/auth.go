package admin

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/solemart/storefront/internal/http/response"
	"github.com/solemart/storefront/internal/logger"
	"github.com/solemart/storefront/internal/service"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an admin and returns a JWT.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username and password are required")
		return
	}

	token, expiresAt, admin, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid username or password")
			return
		}
		logger.Errorw("admin_login_failed", "username", req.Username, "error", err)
		response.Error(c, response.CodeInternal, "login failed")
		return
	}

	logger.Infow("admin_login", "username", admin.Username)
	response.Success(c, gin.H{
		"token":      token,
		"expires_at": expiresAt,
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
		},
	})
}
