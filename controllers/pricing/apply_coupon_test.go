package pricingControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Deepakbasel-7/Sajilo-mart/middleware"
	"github.com/Deepakbasel-7/Sajilo-mart/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCouponRouter(t *testing.T, seed bool) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "storefront.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}, &models.CartItem{}))

	if seed {
		category := models.Category{Name: "General"}
		require.NoError(t, db.Create(&category).Error)
		product := models.Product{ProductName: "Pashmina Shawl", CurrentPrice: 500, CategoryID: category.ID}
		require.NoError(t, db.Create(&product).Error)
		require.NoError(t, db.Create(&models.CartItem{CustomerID: 1, ProductID: product.ID, Quantity: 2}).Error)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SetCustomerID(1))
	r.POST("/apply-coupon", ApplyCouponHandler(db))
	return r, db
}

func postCoupon(t *testing.T, r *gin.Engine, code string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	body, _ := json.Marshal(gin.H{"coupon_code": code})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/apply-coupon", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestApplyCouponHandler(t *testing.T) {
	r, _ := newCouponRouter(t, true)

	w, resp := postCoupon(t, r, "SAVE20")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1000.0, resp["subtotal"])
	assert.Equal(t, 0.0, resp["delivery"])
	assert.Equal(t, 20.0, resp["discount"])
	assert.Equal(t, 980.0, resp["total"])
}

func TestApplyCouponHandlerUnknownCode(t *testing.T) {
	r, db := newCouponRouter(t, true)

	w, resp := postCoupon(t, r, "FOO")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp, "error")

	// A rejected coupon changes no state.
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApplyCouponHandlerEmptyCart(t *testing.T) {
	r, _ := newCouponRouter(t, false)

	w, resp := postCoupon(t, r, "SAVE20")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp, "error")
}
