package service

import (
	"net/url"
	"strings"
	"testing"

	"github.com/solemart/storefront/internal/config"
	"github.com/solemart/storefront/internal/models"
)

func TestOrderLinkEncodesSummary(t *testing.T) {
	svc := NewSupportService(&config.SupportConfig{
		WhatsappNumber: "+234 800 000 0000",
		StoreName:      "Solemart",
	})
	order := &models.Order{
		OrderNo:     "SM20260829120000123456",
		Currency:    "NGN",
		TotalAmount: money(95000),
		Items: []models.OrderItem{
			{ProductName: "Air Force 1 Low White", SizeLabel: "EU 42", Quantity: 1},
			{ProductName: "Victori One Slide", Quantity: 2},
		},
	}

	link := svc.OrderLink(order)
	if !strings.HasPrefix(link, "https://wa.me/2348000000000?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link failed: %v", err)
	}
	text := parsed.Query().Get("text")
	for _, want := range []string{
		"order SM20260829120000123456",
		"Air Force 1 Low White (EU 42) x1",
		"Victori One Slide x2",
		"Total: NGN 95000.00",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in message, got %q", want, text)
		}
	}
}

func TestOrderLinkEmptyWithoutNumber(t *testing.T) {
	svc := NewSupportService(&config.SupportConfig{})
	if link := svc.OrderLink(&models.Order{OrderNo: "SM1"}); link != "" {
		t.Fatalf("expected empty link without a configured number, got %s", link)
	}
	if link := svc.ContactLink(); link != "" {
		t.Fatalf("expected empty contact link without a configured number, got %s", link)
	}
}

func TestContactLink(t *testing.T) {
	svc := NewSupportService(&config.SupportConfig{WhatsappNumber: "+2348012345678"})
	if link := svc.ContactLink(); link != "https://wa.me/2348012345678" {
		t.Fatalf("unexpected contact link: %s", link)
	}
}
