package pricingControllers

import (
	"errors"
	"net/http"

	"github.com/Deepakbasel-7/Sajilo-mart/middleware"
	"github.com/Deepakbasel-7/Sajilo-mart/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidCoupon = errors.New("invalid coupon code")
	ErrEmptyCart     = errors.New("cart is empty")
)

// DeliveryFee and DefaultDiscount apply to every quote that has no coupon
// override. Money is decimal throughout; floats only appear at the JSON edge.
var (
	DeliveryFee     = decimal.Zero
	DefaultDiscount = decimal.NewFromInt(10)
)

// Coupon maps a client-supplied code to a discount and an optional delivery
// override.
type Coupon struct {
	Discount decimal.Decimal
	Delivery *decimal.Decimal
}

var freeDelivery = decimal.Zero

var coupons = map[string]Coupon{
	"SAVE20":   {Discount: decimal.NewFromInt(20)},
	"SAVE50":   {Discount: decimal.NewFromInt(50)},
	"FREESHIP": {Discount: decimal.NewFromInt(10), Delivery: &freeDelivery},
}

// Quote is the priced view of a cart.
type Quote struct {
	Subtotal decimal.Decimal
	Delivery decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
	// ItemCount is the number of cart lines, Quantity the summed quantities.
	ItemCount int
	Quantity  int
}

// Calculate prices a cart. It is a pure function of the items and the coupon
// code; it never touches the database. Items must carry their Product.
// The total is not floored at zero: an empty cart with the default discount
// quotes negative, which mirrors the storefront's documented behaviour.
func Calculate(items []models.CartItem, couponCode string) (Quote, error) {
	if couponCode != "" && len(items) == 0 {
		return Quote{}, ErrEmptyCart
	}

	delivery := DeliveryFee
	discount := DefaultDiscount
	if couponCode != "" {
		coupon, ok := coupons[couponCode]
		if !ok {
			return Quote{}, ErrInvalidCoupon
		}
		discount = coupon.Discount
		if coupon.Delivery != nil {
			delivery = *coupon.Delivery
		}
	}

	q := Quote{Delivery: delivery, Discount: discount, Subtotal: decimal.Zero}
	for _, item := range items {
		price := decimal.NewFromFloat(item.Product.CurrentPrice)
		q.Subtotal = q.Subtotal.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		q.ItemCount++
		q.Quantity += item.Quantity
	}
	q.Total = q.Subtotal.Add(q.Delivery).Sub(q.Discount)
	return q, nil
}

type applyCouponInput struct {
	CouponCode string `json:"coupon_code" binding:"required"`
}

// POST /apply-coupon
func ApplyCouponHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := middleware.CustomerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input applyCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coupon_code is required"})
			return
		}

		var items []models.CartItem
		if err := db.Preload("Product").Where("customer_id = ?", customerID).Find(&items).Error; err != nil {
			log.WithFields(log.Fields{"kind": "Unexpected", "customer_id": customerID}).Error("apply-coupon: failed to load cart: ", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		quote, err := Calculate(items, input.CouponCode)
		if err != nil {
			kind := "InvalidCoupon"
			if errors.Is(err, ErrEmptyCart) {
				kind = "EmptyCart"
			}
			log.WithFields(log.Fields{"kind": kind, "customer_id": customerID, "coupon": input.CouponCode}).Info("apply-coupon rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"coupon_code": input.CouponCode,
			"subtotal":    quote.Subtotal.InexactFloat64(),
			"delivery":    quote.Delivery.InexactFloat64(),
			"discount":    quote.Discount.InexactFloat64(),
			"total":       quote.Total.InexactFloat64(),
		})
	}
}
