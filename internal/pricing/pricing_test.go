package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rehanmiah/the-palace-v1-sub000/internal/domain"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		subtotal     float64
		mode         domain.OrderMode
		wantFee      float64
		wantDiscount float64
		wantTotal    float64
	}{
		{
			name:      "delivery below threshold pays fee",
			subtotal:  14.99,
			mode:      domain.ModeDelivery,
			wantFee:   2.99,
			wantTotal: 17.98,
		},
		{
			name:      "delivery at threshold ships free",
			subtotal:  15.00,
			mode:      domain.ModeDelivery,
			wantFee:   0,
			wantTotal: 15.00,
		},
		{
			name:      "delivery above threshold ships free",
			subtotal:  15.01,
			mode:      domain.ModeDelivery,
			wantFee:   0,
			wantTotal: 15.01,
		},
		{
			name:         "collection at threshold gets no discount",
			subtotal:     15.00,
			mode:         domain.ModeCollection,
			wantDiscount: 0,
			wantTotal:    15.00,
		},
		{
			name:         "collection above threshold gets 10 percent off",
			subtotal:     15.01,
			mode:         domain.ModeCollection,
			wantDiscount: 1.501,
			wantTotal:    13.509,
		},
		{
			name:      "small collection order pays neither fee nor discount",
			subtotal:  8.00,
			mode:      domain.ModeCollection,
			wantTotal: 8.00,
		},
		{
			name:      "empty cart delivery still quotes the fee",
			subtotal:  0,
			mode:      domain.ModeDelivery,
			wantFee:   2.99,
			wantTotal: 2.99,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			totals := ComputeTotals(testCase.subtotal, testCase.mode)

			assert.Equal(t, testCase.subtotal, totals.Subtotal)
			assert.Equal(t, testCase.mode, totals.Mode)
			assert.InDelta(t, testCase.wantFee, totals.DeliveryFee, 1e-9)
			assert.InDelta(t, testCase.wantDiscount, totals.CollectionDiscount, 1e-9)
			assert.InDelta(t, testCase.wantTotal, totals.Total, 1e-9)
		})
	}
}

// The fee and discount are gated on mode, so no order ever receives both.
func TestComputeTotals_AdjustmentsAreMutuallyExclusive(t *testing.T) {
	for _, subtotal := range []float64{0, 5, 14.99, 15.00, 15.01, 40} {
		delivery := ComputeTotals(subtotal, domain.ModeDelivery)
		assert.Zero(t, delivery.CollectionDiscount)

		collection := ComputeTotals(subtotal, domain.ModeCollection)
		assert.Zero(t, collection.DeliveryFee)
	}
}

func TestParseOrderMode(t *testing.T) {
	mode, err := domain.ParseOrderMode("delivery")
	assert.NoError(t, err)
	assert.Equal(t, domain.ModeDelivery, mode)

	mode, err = domain.ParseOrderMode("collection")
	assert.NoError(t, err)
	assert.Equal(t, domain.ModeCollection, mode)

	_, err = domain.ParseOrderMode("drone-drop")
	assert.ErrorIs(t, err, domain.ErrUnknownOrderMode)
}
