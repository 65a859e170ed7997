package orderControllers

import (
	"path/filepath"
	"testing"

	"github.com/Deepakbasel-7/Sajilo-mart/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "storefront.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
	))
	return db
}

type seeded struct {
	productA models.Product
	productB models.Product
}

// seedCart gives customer 1 a two-line cart: productA qty 2 @ 50, productB
// qty 1 @ 30.
func seedCart(t *testing.T, db *gorm.DB) seeded {
	t.Helper()
	category := models.Category{Name: "General"}
	require.NoError(t, db.Create(&category).Error)

	productA := models.Product{ProductName: "Basmati Rice", CurrentPrice: 50, InStock: 10, CategoryID: category.ID}
	productB := models.Product{ProductName: "Mustard Oil", CurrentPrice: 30, InStock: 5, CategoryID: category.ID}
	require.NoError(t, db.Create(&productA).Error)
	require.NoError(t, db.Create(&productB).Error)

	require.NoError(t, db.Create(&models.CartItem{CustomerID: 1, ProductID: productA.ID, Quantity: 2}).Error)
	require.NoError(t, db.Create(&models.CartItem{CustomerID: 1, ProductID: productB.ID, Quantity: 1}).Error)

	return seeded{productA: productA, productB: productB}
}

func confirmed(token string) PaymentConfirmation {
	return PaymentConfirmation{Verified: true, Token: token, RefID: "idx-1"}
}

func TestConvertCartToOrders(t *testing.T) {
	db := newTestDB(t)
	s := seedCart(t, db)

	orders, err := ConvertCartToOrders(db, 1, confirmed("tok-123"))
	require.NoError(t, err)
	require.Len(t, orders, 2)

	for _, o := range orders {
		assert.Equal(t, models.OrderStatusPaid, o.Status)
		assert.Equal(t, "tok-123", o.PaymentID)
		assert.EqualValues(t, 1, o.CustomerID)
		assert.NotEmpty(t, o.OrderRef)
	}
	assert.Equal(t, 2, orders[0].Quantity)
	assert.Equal(t, 50.0, orders[0].Price)
	assert.Equal(t, 1, orders[1].Quantity)
	assert.Equal(t, 30.0, orders[1].Price)

	var stockA, stockB models.Product
	require.NoError(t, db.First(&stockA, s.productA.ID).Error)
	require.NoError(t, db.First(&stockB, s.productB.ID).Error)
	assert.Equal(t, 8, stockA.InStock)
	assert.Equal(t, 4, stockB.InStock)

	var remaining int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("customer_id = ?", 1).Count(&remaining).Error)
	assert.EqualValues(t, 0, remaining, "converted cart items must be deleted")

	var persisted int64
	require.NoError(t, db.Model(&models.Order{}).Count(&persisted).Error)
	assert.EqualValues(t, 2, persisted)
}

func TestConvertCapturesPriceAtConversionTime(t *testing.T) {
	db := newTestDB(t)
	s := seedCart(t, db)

	// Reprice after the item went into the cart; the order must carry the
	// price current at conversion.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", s.productA.ID).
		Update("current_price", 75).Error)

	orders, err := ConvertCartToOrders(db, 1, confirmed("tok-456"))
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 75.0, orders[0].Price)
}

func TestConvertEmptyCart(t *testing.T) {
	db := newTestDB(t)

	orders, err := ConvertCartToOrders(db, 1, confirmed("tok-789"))
	require.NoError(t, err)
	assert.Empty(t, orders)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestConvertRequiresVerification(t *testing.T) {
	db := newTestDB(t)
	seedCart(t, db)

	_, err := ConvertCartToOrders(db, 1, PaymentConfirmation{Verified: false, Token: "tok-000"})
	assert.ErrorIs(t, err, ErrPaymentNotVerified)

	var orders, items int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.CartItem{}).Count(&items).Error)
	assert.EqualValues(t, 0, orders)
	assert.EqualValues(t, 2, items)
}

func TestConvertRollsBackWhenAnItemFails(t *testing.T) {
	db := newTestDB(t)
	s := seedCart(t, db)

	// Break the second line: its product row is gone, so the conversion
	// fails mid-loop after productA was already processed.
	require.NoError(t, db.Delete(&models.Product{}, s.productB.ID).Error)

	_, err := ConvertCartToOrders(db, 1, confirmed("tok-bad"))
	require.Error(t, err)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.EqualValues(t, 0, orders, "partial conversion must roll back entirely")

	var stockA models.Product
	require.NoError(t, db.First(&stockA, s.productA.ID).Error)
	assert.Equal(t, 10, stockA.InStock, "productA's stock change must roll back too")

	var items int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("customer_id = ?", 1).Count(&items).Error)
	assert.EqualValues(t, 2, items, "the cart must remain exactly as before the attempt")
}

func TestConvertOnlyTouchesOwnCart(t *testing.T) {
	db := newTestDB(t)
	s := seedCart(t, db)
	require.NoError(t, db.Create(&models.CartItem{CustomerID: 2, ProductID: s.productA.ID, Quantity: 3}).Error)

	orders, err := ConvertCartToOrders(db, 1, confirmed("tok-own"))
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	var otherItems int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("customer_id = ?", 2).Count(&otherItems).Error)
	assert.EqualValues(t, 1, otherItems)
}
