package routes

import (
	orderControllers "github.com/Deepakbasel-7/Sajilo-mart/controllers/order"
	paymentControllers "github.com/Deepakbasel-7/Sajilo-mart/controllers/payment"
	"github.com/Deepakbasel-7/Sajilo-mart/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers order history and checkout endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, verifier *paymentControllers.Verifier) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.GET("/", orderControllers.GetCustomerOrdersHandler(db))

		// Spreadsheet download of the customer's order history
		orders.GET("/export", orderControllers.ExportOrdersToExcel(db))

		// Websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)
	}

	checkout := r.Group("/")
	checkout.Use(middleware.ValidateToken)
	{
		// Payment verification converts the cart into paid orders
		checkout.POST("/verify-khalti", paymentControllers.VerifyKhaltiHandler(db, verifier))
	}
}
