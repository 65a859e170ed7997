package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const customerKey = "customer_id"

// ValidateToken checks the bearer token issued by the identity service and
// stores the customer id in the request context. Every cart/order handler
// reads the customer from here; nothing resolves identity ambiently.
func ValidateToken(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	// Numeric JSON claims decode as float64.
	id, ok := claims["customer_id"].(float64)
	if !ok || id < 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	c.Set(customerKey, uint(id))
	c.Next()
}

// CustomerID returns the authenticated customer for the current request.
func CustomerID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(customerKey)
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}

// SetCustomerID injects an identity directly, bypassing token validation.
// Handler tests use it in place of ValidateToken.
func SetCustomerID(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(customerKey, id)
		c.Next()
	}
}
