package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/solemart/storefront/internal/config"
	"github.com/solemart/storefront/internal/models"
)

// SupportService composes WhatsApp hand-off links for manual assistance.
type SupportService struct {
	cfg *config.SupportConfig
}

// NewSupportService creates the support service.
func NewSupportService(cfg *config.SupportConfig) *SupportService {
	return &SupportService{cfg: cfg}
}

// OrderLink builds a wa.me link preloaded with the order summary so the
// customer can confirm payment or ask questions over WhatsApp.
func (s *SupportService) OrderLink(order *models.Order) string {
	number := s.normalizedNumber()
	if number == "" || order == nil {
		return ""
	}

	store := strings.TrimSpace(s.cfg.StoreName)
	if store == "" {
		store = "the store"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s, I just placed order %s.\n", store, order.OrderNo)
	for _, item := range order.Items {
		line := item.ProductName
		if item.SizeLabel != "" {
			line = fmt.Sprintf("%s (%s)", line, item.SizeLabel)
		}
		fmt.Fprintf(&b, "- %s x%d\n", line, item.Quantity)
	}
	fmt.Fprintf(&b, "Total: %s %s", order.Currency, order.TotalAmount.String())

	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(b.String()))
}

// ContactLink builds a plain wa.me contact link.
func (s *SupportService) ContactLink() string {
	number := s.normalizedNumber()
	if number == "" {
		return ""
	}
	return "https://wa.me/" + number
}

func (s *SupportService) normalizedNumber() string {
	if s == nil || s.cfg == nil {
		return ""
	}
	number := strings.TrimSpace(s.cfg.WhatsappNumber)
	number = strings.TrimPrefix(number, "+")
	return strings.ReplaceAll(number, " ", "")
}
