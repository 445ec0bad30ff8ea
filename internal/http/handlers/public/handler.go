package public

import "github.com/solemart/storefront/internal/provider"

// Handler serves the storefront-facing API.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
