package pricing

import "github.com/rehanmiah/the-palace-v1-sub000/internal/domain"

// Checkout pricing policy. Amounts are in the same currency unit as dish
// prices.
const (
	FreeDeliveryThreshold       = 15.00
	DeliveryFee                 = 2.99
	CollectionDiscountThreshold = 15.00
	CollectionDiscountRate      = 0.10
)

// ComputeTotals prices a checkout for the given order mode.
//
// Note the comparisons are not symmetric: delivery orders at exactly the
// threshold ship free (fee applies strictly below it), while collection
// orders at exactly the threshold do NOT earn the discount (it applies
// strictly above it). Checkout has always behaved this way; keep the
// operators as-is.
func ComputeTotals(subtotal float64, mode domain.OrderMode) domain.Totals {
	totals := domain.Totals{Subtotal: subtotal, Mode: mode}

	if mode == domain.ModeDelivery && subtotal < FreeDeliveryThreshold {
		totals.DeliveryFee = DeliveryFee
	}
	if mode == domain.ModeCollection && subtotal > CollectionDiscountThreshold {
		totals.CollectionDiscount = subtotal * CollectionDiscountRate
	}

	totals.Total = subtotal + totals.DeliveryFee - totals.CollectionDiscount
	return totals
}
