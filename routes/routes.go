package routes

import (
	paymentControllers "github.com/Deepakbasel-7/Sajilo-mart/controllers/payment"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the storefront, cart,
// order and payment route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, verifier *paymentControllers.Verifier) {
	// Public catalog routes (no middleware)
	SetupStoreRoutes(r, db)

	// Cart and wishlist routes (JWT-protected)
	SetupCartRoutes(r, db)

	// Order history and checkout routes (JWT-protected)
	SetupOrderRoutes(r, db, verifier)
}
