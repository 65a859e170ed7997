package pricingControllers

import (
	"testing"

	"github.com/Deepakbasel-7/Sajilo-mart/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(price float64, quantity int) models.CartItem {
	return models.CartItem{
		Quantity: quantity,
		Product:  models.Product{CurrentPrice: price},
	}
}

func TestCalculateSubtotal(t *testing.T) {
	items := []models.CartItem{
		line(50, 2),
		line(30, 1),
		line(19.99, 3),
	}

	quote, err := Calculate(items, "")
	require.NoError(t, err)

	assert.True(t, quote.Subtotal.Equal(decimal.NewFromFloat(189.97)), "subtotal %s", quote.Subtotal)
	assert.Equal(t, 3, quote.ItemCount)
	assert.Equal(t, 6, quote.Quantity)
}

func TestCalculateAppliesDefaults(t *testing.T) {
	quote, err := Calculate([]models.CartItem{line(100, 1)}, "")
	require.NoError(t, err)

	assert.True(t, quote.Delivery.Equal(decimal.Zero))
	assert.True(t, quote.Discount.Equal(decimal.NewFromInt(10)))
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(90)))
}

func TestSave20Coupon(t *testing.T) {
	// subtotal 1000, delivery 0 → total 980
	items := []models.CartItem{line(500, 2)}

	quote, err := Calculate(items, "SAVE20")
	require.NoError(t, err)

	assert.True(t, quote.Subtotal.Equal(decimal.NewFromInt(1000)))
	assert.True(t, quote.Discount.Equal(decimal.NewFromInt(20)))
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(980)))
}

func TestSave50Coupon(t *testing.T) {
	quote, err := Calculate([]models.CartItem{line(200, 1)}, "SAVE50")
	require.NoError(t, err)

	assert.True(t, quote.Discount.Equal(decimal.NewFromInt(50)))
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(150)))
}

func TestFreeShipOverridesDelivery(t *testing.T) {
	old := DeliveryFee
	DeliveryFee = decimal.NewFromInt(200)
	defer func() { DeliveryFee = old }()

	items := []models.CartItem{line(100, 1)}

	quote, err := Calculate(items, "")
	require.NoError(t, err)
	assert.True(t, quote.Delivery.Equal(decimal.NewFromInt(200)))
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(290)))

	quote, err = Calculate(items, "FREESHIP")
	require.NoError(t, err)
	assert.True(t, quote.Delivery.Equal(decimal.Zero))
	assert.True(t, quote.Discount.Equal(decimal.NewFromInt(10)))
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(90)))
}

func TestUnknownCouponRejected(t *testing.T) {
	items := []models.CartItem{line(100, 1)}

	_, err := Calculate(items, "FOO")
	assert.ErrorIs(t, err, ErrInvalidCoupon)
}

func TestCouponOnEmptyCart(t *testing.T) {
	_, err := Calculate(nil, "SAVE20")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestTotalHasNoFloorAtZero(t *testing.T) {
	// A discount larger than the subtotal quotes negative; the calculator
	// reports it as-is.
	quote, err := Calculate([]models.CartItem{line(30, 1)}, "SAVE50")
	require.NoError(t, err)
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(-20)))
}

func TestCalculateIsPure(t *testing.T) {
	items := []models.CartItem{line(75.5, 2)}

	first, err := Calculate(items, "SAVE20")
	require.NoError(t, err)
	second, err := Calculate(items, "SAVE20")
	require.NoError(t, err)

	assert.True(t, first.Total.Equal(second.Total))
	assert.Equal(t, 2, items[0].Quantity, "input must not be mutated")
}
