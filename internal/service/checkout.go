package service

import (
	"github.com/shopspring/decimal"

	"github.com/solemart/storefront/internal/models"
)

// Total combines the checkout amounts: the discount is taken off the
// subtotal (floored at zero) before the delivery fee is added.
func Total(subtotal, discount, fee models.Money) models.Money {
	discounted := subtotal.Decimal.Sub(discount.Decimal)
	if discounted.IsNegative() {
		discounted = decimal.Zero
	}
	return models.NewMoneyFromDecimal(discounted.Add(fee.Decimal))
}
