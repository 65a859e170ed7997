package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Deepakbasel-7/Sajilo-mart/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// GET / — flash-sale items plus the category list for the landing page.
func HomeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.Product
		if err := db.Preload("Category").Where("flash_sale = ?", true).Find(&items).Error; err != nil {
			log.WithField("kind", "Unexpected").Error("home: failed to fetch flash-sale items: ", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			log.WithField("kind", "Unexpected").Error("home: failed to fetch categories: ", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":      items,
			"categories": categories,
		})
	}
}

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Category").First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// GET|POST /search — name search; the query arrives as ?search= or form field.
func SearchHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("search")
		if query == "" {
			query = c.PostForm("search")
		}
		if query == "" {
			c.JSON(http.StatusOK, gin.H{"items": []models.Product{}})
			return
		}

		var items []models.Product
		if err := db.Preload("Category").
			Where("LOWER(product_name) LIKE LOWER(?)", "%"+query+"%").
			Find(&items).Error; err != nil {
			log.WithFields(log.Fields{"kind": "Unexpected", "query": query}).Error("search failed: ", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// GET /categories
func GetCategoriesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Preload("Products").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
