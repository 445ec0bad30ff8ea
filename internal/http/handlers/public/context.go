package public

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/solemart/storefront/internal/constants"
)

// cartSession reads the cart session key from the request header.
func cartSession(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(constants.CartSessionHeader))
}
