package wishlistControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Deepakbasel-7/Sajilo-mart/middleware"
	"github.com/Deepakbasel-7/Sajilo-mart/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("wishlist item not found")

// GET /wishlist
func GetWishlistHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := middleware.CustomerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var items []models.Wishlist
		if err := db.Preload("Product").Where("customer_id = ?", customerID).Find(&items).Error; err != nil {
			log.WithFields(log.Fields{"kind": "Unexpected", "customer_id": customerID}).Error("wishlist fetch failed: ", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"wishlist_items": items,
			"wishlist_count": len(items),
		})
	}
}

// POST /add-to-wishlist/:productId
func AddToWishlistHandler(db *gorm.DB) gin.HandlerFunc {
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

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var existing models.Wishlist
		err = db.Where("customer_id = ? AND product_id = ?", customerID, productID).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Item already in wishlist", "item": existing})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		item := models.Wishlist{CustomerID: customerID, ProductID: uint(productID), Quantity: 1}
		if err := db.Create(&item).Error; err != nil {
			log.WithFields(log.Fields{"kind": "Unexpected", "customer_id": customerID, "product_id": productID}).Error("add-to-wishlist failed: ", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to wishlist"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Item added to wishlist", "item": item})
	}
}

// DELETE /remove-wishlist-item/:id
func RemoveWishlistItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := middleware.CustomerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		result := db.Where("id = ? AND customer_id = ?", id, customerID).Delete(&models.Wishlist{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": ErrNotFound.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
