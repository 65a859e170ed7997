package routes

import (
	cartControllers "github.com/Deepakbasel-7/Sajilo-mart/controllers/cart"
	pricingControllers "github.com/Deepakbasel-7/Sajilo-mart/controllers/pricing"
	wishlistControllers "github.com/Deepakbasel-7/Sajilo-mart/controllers/wishlist"
	"github.com/Deepakbasel-7/Sajilo-mart/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCartRoutes registers all cart and wishlist endpoints. Requires JWT
// middleware — the customer id scoping every query comes from the token.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	group := r.Group("/")
	group.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		group.POST("/add-to-cart/:productId", cartControllers.AddToCartHandler(db))
		group.GET("/cart", cartControllers.ShowCartHandler(db))
		group.POST("/update-cart/:itemId", cartControllers.UpdateCartItemHandler(db))
		group.DELETE("/remove-cart-item/:itemId", cartControllers.RemoveCartItemHandler(db))
		group.POST("/clear-cart", cartControllers.ClearCartHandler(db))
		group.POST("/pluscart", cartControllers.PlusCartHandler(db))
		group.POST("/minuscart", cartControllers.MinusCartHandler(db))
		group.POST("/removecart", cartControllers.RemoveCartHandler(db))

		// ──────────────── Coupons ────────────────
		group.POST("/apply-coupon", pricingControllers.ApplyCouponHandler(db))

		// ──────────────── Wishlist ────────────────
		group.GET("/wishlist", wishlistControllers.GetWishlistHandler(db))
		group.POST("/add-to-wishlist/:productId", wishlistControllers.AddToWishlistHandler(db))
		group.DELETE("/remove-wishlist-item/:id", wishlistControllers.RemoveWishlistItemHandler(db))
	}
}
