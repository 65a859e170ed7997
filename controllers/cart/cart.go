package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	pricingControllers "github.com/Deepakbasel-7/Sajilo-mart/controllers/pricing"
	"github.com/Deepakbasel-7/Sajilo-mart/middleware"
	"github.com/Deepakbasel-7/Sajilo-mart/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("cart item not found")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// -------- Store operations --------
//
// Every mutation is scoped by customer id in the WHERE clause. The ownership
// check is part of the query, not a separate step, so a customer can never
// touch another customer's rows.

// AddItem puts one unit of a product in the cart, incrementing the quantity
// if a line for this (customer, product) pair already exists. The unique
// index on cart_items backs up the lookup-before-insert.
func AddItem(db *gorm.DB, customerID, productID uint) (models.CartItem, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, ErrProductNotFound
		}
		return models.CartItem{}, err
	}

	var item models.CartItem
	err := db.Where("customer_id = ? AND product_id = ?", customerID, productID).First(&item).Error
	if err == nil {
		item.Quantity++
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			return models.CartItem{}, err
		}
		return item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartItem{}, err
	}

	item = models.CartItem{
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   1,
		AddedAt:    time.Now(),
	}
	if err := db.Create(&item).Error; err != nil {
		return models.CartItem{}, err
	}
	return item, nil
}

// SetQuantity replaces the quantity of an owned cart line.
func SetQuantity(db *gorm.DB, customerID, itemID uint, quantity int) (models.CartItem, error) {
	if quantity < 1 {
		return models.CartItem{}, ErrInvalidQuantity
	}

	var item models.CartItem
	if err := db.Where("id = ? AND customer_id = ?", itemID, customerID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, ErrNotFound
		}
		return models.CartItem{}, err
	}

	item.Quantity = quantity
	if err := db.Save(&item).Error; err != nil {
		return models.CartItem{}, err
	}
	return item, nil
}

// Increment adds one to an owned cart line.
func Increment(db *gorm.DB, customerID, itemID uint) (models.CartItem, error) {
	var item models.CartItem
	if err := db.Where("id = ? AND customer_id = ?", itemID, customerID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, ErrNotFound
		}
		return models.CartItem{}, err
	}
	item.Quantity++
	if err := db.Save(&item).Error; err != nil {
		return models.CartItem{}, err
	}
	return item, nil
}

// Decrement subtracts one from an owned cart line. At quantity 1 it is a
// no-op, never a deletion; removal is an explicit separate operation.
func Decrement(db *gorm.DB, customerID, itemID uint) (models.CartItem, error) {
	var item models.CartItem
	if err := db.Where("id = ? AND customer_id = ?", itemID, customerID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, ErrNotFound
		}
		return models.CartItem{}, err
	}
	if item.Quantity > 1 {
		item.Quantity--
		if err := db.Save(&item).Error; err != nil {
			return models.CartItem{}, err
		}
	}
	return item, nil
}

// RemoveItem deletes an owned cart line.
func RemoveItem(db *gorm.DB, customerID, itemID uint) error {
	result := db.Where("id = ? AND customer_id = ?", itemID, customerID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearCart deletes every line of the customer's cart. Idempotent.
func ClearCart(db *gorm.DB, customerID uint) error {
	return db.Where("customer_id = ?", customerID).Delete(&models.CartItem{}).Error
}

// ListItems returns the customer's cart lines with their products loaded.
func ListItems(db *gorm.DB, customerID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := db.Preload("Product").Where("customer_id = ?", customerID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// -------- Handlers --------

// POST /add-to-cart/:productId
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := middleware.CustomerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		item, err := AddItem(db, customerID, uint(productID))
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				log.WithFields(log.Fields{"kind": "NotFound", "customer_id": customerID, "product_id": productID}).Info("add-to-cart: unknown product")
				c.JSON(http.StatusNotFound, gin.H{"error": "Product does not exist"})
				return
			}
			log.WithFields(log.Fields{"kind": "Unexpected", "customer_id": customerID, "product_id": productID}).Error("add-to-cart failed: ", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item added to cart", "item": item})
	}
}

// GET /cart
func ShowCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := middleware.CustomerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		items, err := ListItems(db, customerID)
		if err != nil {
			log.WithFields(log.Fields{"kind": "Unexpected", "customer_id": customerID}).Error("show-cart failed: ", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		quote, err := pricingControllers.Calculate(items, "")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to price cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"cart":     items,
			"subtotal": quote.Subtotal.InexactFloat64(),
			"delivery": quote.Delivery.InexactFloat64(),
			"discount": quote.Discount.InexactFloat64(),
			"total":    quote.Total.InexactFloat64(),
		})
	}
}

type updateCartInput struct {
	Quantity int `json:"quantity"`
}

// POST /update-cart/:itemId
func UpdateCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := middleware.CustomerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		var input updateCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		item, err := SetQuantity(db, customerID, uint(itemID), input.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidQuantity):
				log.WithFields(log.Fields{"kind": "InvalidArgument", "customer_id": customerID, "item_id": itemID, "quantity": input.Quantity}).Info("update-cart rejected")
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, ErrNotFound):
				log.WithFields(log.Fields{"kind": "NotFound", "customer_id": customerID, "item_id": itemID}).Info("update-cart: item not found")
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				log.WithFields(log.Fields{"kind": "Unexpected", "customer_id": customerID, "item_id": itemID}).Error("update-cart failed: ", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			}
			return
		}

		items, err := ListItems(db, customerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		quote, _ := pricingControllers.Calculate(items, "")

		var itemTotal float64
		for _, it := range items {
			if it.ID == item.ID {
				itemTotal = it.Product.CurrentPrice * float64(it.Quantity)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"item_total": itemTotal,
			"subtotal":   quote.Subtotal.InexactFloat64(),
			"delivery":   quote.Delivery.InexactFloat64(),
			"discount":   quote.Discount.InexactFloat64(),
			"total":      quote.Total.InexactFloat64(),
			"cart_count": quote.ItemCount,
		})
	}
}

// DELETE /remove-cart-item/:itemId
func RemoveCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := middleware.CustomerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		if err := RemoveItem(db, customerID, uint(itemID)); err != nil {
			if errors.Is(err, ErrNotFound) {
				log.WithFields(log.Fields{"kind": "NotFound", "customer_id": customerID, "item_id": itemID}).Info("remove-cart-item: item not found")
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			log.WithFields(log.Fields{"kind": "Unexpected", "customer_id": customerID, "item_id": itemID}).Error("remove-cart-item failed: ", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		items, err := ListItems(db, customerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		quote, _ := pricingControllers.Calculate(items, "")

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"cart_empty": len(items) == 0,
			"subtotal":   quote.Subtotal.InexactFloat64(),
			"delivery":   quote.Delivery.InexactFloat64(),
			"discount":   quote.Discount.InexactFloat64(),
			"total":      quote.Total.InexactFloat64(),
		})
	}
}

// POST /clear-cart
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := middleware.CustomerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := ClearCart(db, customerID); err != nil {
			log.WithFields(log.Fields{"kind": "Unexpected", "customer_id": customerID}).Error("clear-cart failed: ", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// cartSummary answers the pluscart/minuscart/removecart endpoints, which the
// storefront polls after every quantity tweak.
func cartSummary(c *gin.Context, db *gorm.DB, customerID uint) {
	items, err := ListItems(db, customerID)
	if err != nil {
		log.WithFields(log.Fields{"kind": "Unexpected", "customer_id": customerID}).Error("cart summary failed: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}
	quote, _ := pricingControllers.Calculate(items, "")
	c.JSON(http.StatusOK, gin.H{
		"quantity": quote.Quantity,
		"amount":   quote.Subtotal.InexactFloat64(),
		"total":    quote.Total.InexactFloat64(),
	})
}

func cartIDFromForm(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.PostForm("cart_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart_id is required"})
		return 0, false
	}
	return uint(id), true
}

// POST /pluscart
func PlusCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := middleware.CustomerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		itemID, ok := cartIDFromForm(c)
		if !ok {
			return
		}
		if _, err := Increment(db, customerID, itemID); err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		cartSummary(c, db, customerID)
	}
}

// POST /minuscart
func MinusCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := middleware.CustomerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		itemID, ok := cartIDFromForm(c)
		if !ok {
			return
		}
		if _, err := Decrement(db, customerID, itemID); err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		cartSummary(c, db, customerID)
	}
}

// POST /removecart
func RemoveCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := middleware.CustomerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		itemID, ok := cartIDFromForm(c)
		if !ok {
			return
		}
		if err := RemoveItem(db, customerID, itemID); err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		cartSummary(c, db, customerID)
	}
}
