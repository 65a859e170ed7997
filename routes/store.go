package routes

import (
	contactControllers "github.com/Deepakbasel-7/Sajilo-mart/controllers/contact"
	productControllers "github.com/Deepakbasel-7/Sajilo-mart/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupStoreRoutes registers the public browsing endpoints.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", productControllers.HomeHandler(db))                     // GET /
	r.GET("/products/:id", productControllers.GetProductByID(db))      // GET /products/:id
	r.GET("/categories", productControllers.GetCategoriesHandler(db))  // GET /categories
	r.GET("/search", productControllers.SearchHandler(db))             // GET /search?search=
	r.POST("/search", productControllers.SearchHandler(db))            // POST /search
	r.POST("/contact", contactControllers.CreateContactMessageHandler(db)) // POST /contact
	r.GET("/reviews", contactControllers.GetReviewsHandler(db))        // GET /reviews
	r.POST("/reviews", contactControllers.CreateReviewHandler(db))     // POST /reviews
}
