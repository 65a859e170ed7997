package paymentControllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	orderControllers "github.com/Deepakbasel-7/Sajilo-mart/controllers/order"
	"github.com/Deepakbasel-7/Sajilo-mart/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrVerificationUnavailable means the gateway could not give an answer at
// all (unreachable, timeout, undecodable body). Callers must treat it as a
// failed verification, never as a successful payment.
var ErrVerificationUnavailable = errors.New("payment gateway unavailable")

const (
	defaultVerifyURL = "https://khalti.com/api/v2/payment/verify/"
	defaultTimeout   = 10 * time.Second
)

type VerificationResult struct {
	Verified    bool
	ReferenceID string
}

// Verifier checks payment tokens against the Khalti gateway.
type Verifier struct {
	client *resty.Client
	secret string
	url    string
}

// NewVerifier builds a gateway client with a bounded timeout. Gateway calls
// are slow and untrusted; they never run inside a database transaction.
func NewVerifier(secret, url string, timeout time.Duration) *Verifier {
	if url == "" {
		url = defaultVerifyURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Verifier{
		client: resty.New().SetTimeout(timeout).SetRetryCount(0),
		secret: secret,
		url:    url,
	}
}

// NewVerifierFromEnv reads KHALTI_SECRET_KEY, KHALTI_VERIFY_URL and
// KHALTI_TIMEOUT_SECONDS.
func NewVerifierFromEnv() *Verifier {
	timeout := defaultTimeout
	if s := os.Getenv("KHALTI_TIMEOUT_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}
	return NewVerifier(os.Getenv("KHALTI_SECRET_KEY"), os.Getenv("KHALTI_VERIFY_URL"), timeout)
}

// A successful verification carries a non-empty transaction idx.
type khaltiVerifyResponse struct {
	Idx string `json:"idx"`
}

// Verify asks the gateway whether token corresponds to a completed payment of
// amount. A non-200 status or a missing idx field is a clean "not verified";
// transport errors and malformed bodies are ErrVerificationUnavailable.
func (v *Verifier) Verify(token string, amount int64) (VerificationResult, error) {
	resp, err := v.client.R().
		SetHeader("Authorization", "Key "+v.secret).
		SetFormData(map[string]string{
			"token":  token,
			"amount": strconv.FormatInt(amount, 10),
		}).
		Post(v.url)
	if err != nil {
		return VerificationResult{}, fmt.Errorf("%w: %v", ErrVerificationUnavailable, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return VerificationResult{}, nil
	}

	var body khaltiVerifyResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return VerificationResult{}, fmt.Errorf("%w: %v", ErrVerificationUnavailable, err)
	}
	if body.Idx == "" {
		return VerificationResult{}, nil
	}
	return VerificationResult{Verified: true, ReferenceID: body.Idx}, nil
}

type verifyKhaltiInput struct {
	Token  string `json:"token" binding:"required"`
	Amount int64  `json:"amount" binding:"required"`
}

// POST /verify-khalti
//
// Verification failures of any kind answer {"success": false}; the client is
// never shown gateway internals. Only a confirmed payment triggers the
// cart-to-orders conversion.
func VerifyKhaltiHandler(db *gorm.DB, verifier *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := middleware.CustomerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input verifyKhaltiInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false})
			return
		}

		result, err := verifier.Verify(input.Token, input.Amount)
		if err != nil {
			log.WithFields(log.Fields{"kind": "VerificationUnavailable", "customer_id": customerID}).Warn("khalti verification failed: ", err)
			c.JSON(http.StatusOK, gin.H{"success": false})
			return
		}
		if !result.Verified {
			log.WithFields(log.Fields{"kind": "PaymentNotVerified", "customer_id": customerID}).Info("khalti rejected payment token")
			c.JSON(http.StatusOK, gin.H{"success": false})
			return
		}

		orders, err := orderControllers.ConvertCartToOrders(db, customerID, orderControllers.PaymentConfirmation{
			Verified: true,
			Token:    input.Token,
			RefID:    result.ReferenceID,
		})
		if err != nil {
			log.WithFields(log.Fields{"kind": "Unexpected", "customer_id": customerID}).Error("cart conversion failed: ", err)
			c.JSON(http.StatusOK, gin.H{"success": false})
			return
		}

		log.WithFields(log.Fields{"customer_id": customerID, "orders": len(orders), "idx": result.ReferenceID}).Info("payment verified, cart converted")
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
