package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Deepakbasel-7/Sajilo-mart/middleware"
	"github.com/Deepakbasel-7/Sajilo-mart/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPaymentNotVerified = errors.New("payment not verified")

// PaymentConfirmation is the proof handed over by the gateway verifier. The
// converter refuses to run without it.
type PaymentConfirmation struct {
	Verified bool
	Token    string
	RefID    string
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// ConvertCartToOrders turns every line of the customer's cart into a paid
// order, decrements product stock and empties the cart, all in one
// transaction. A failure anywhere rolls the whole conversion back and leaves
// the cart untouched. An empty cart converts to zero orders without error.
//
// Stock is decremented with no floor at zero; whether overselling should be
// rejected is a product decision this layer does not make.
func ConvertCartToOrders(db *gorm.DB, customerID uint, conf PaymentConfirmation) ([]models.Order, error) {
	if !conf.Verified {
		return nil, ErrPaymentNotVerified
	}

	var orders []models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("customer_id = ?", customerID).Find(&items).Error; err != nil {
			return err
		}

		for _, item := range items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				return err
			}

			order := models.Order{
				OrderRef:   generateOrderRef(),
				CustomerID: customerID,
				ProductID:  product.ID,
				Quantity:   item.Quantity,
				Price:      product.CurrentPrice,
				Status:     models.OrderStatusPaid,
				PaymentID:  conf.Token,
				CreatedAt:  time.Now(),
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			if err := tx.Model(&models.Product{}).Where("id = ?", product.ID).
				UpdateColumn("in_stock", gorm.Expr("in_stock - ?", item.Quantity)).Error; err != nil {
				return err
			}

			if err := tx.Delete(&models.CartItem{}, item.ID).Error; err != nil {
				return err
			}

			orders = append(orders, order)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(orders) > 0 {
		broadcastPaidOrders(orders)
	}
	return orders, nil
}

// GET /orders
func GetCustomerOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := middleware.CustomerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Preload("Product").
			Where("customer_id = ?", customerID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			log.WithFields(log.Fields{"kind": "Unexpected", "customer_id": customerID}).Error("list orders failed: ", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
