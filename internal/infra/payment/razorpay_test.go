package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func checkoutSignature(secret, gatewayOrderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))

	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyCheckoutSignature(t *testing.T) {
	secret := "test_secret"
	signature := checkoutSignature(secret, "order_Nx71a", "pay_abc")

	assert.True(t, verifyCheckoutSignature(secret, "order_Nx71a", "pay_abc", signature))
}

func TestVerifyCheckoutSignature_Tampered(t *testing.T) {
	secret := "test_secret"
	signature := checkoutSignature(secret, "order_Nx71a", "pay_abc")

	assert.False(t, verifyCheckoutSignature(secret, "order_Nx71a", "pay_other", signature))
	assert.False(t, verifyCheckoutSignature(secret, "order_other", "pay_abc", signature))
	assert.False(t, verifyCheckoutSignature("wrong_secret", "order_Nx71a", "pay_abc", signature))
	assert.False(t, verifyCheckoutSignature(secret, "order_Nx71a", "pay_abc", ""))
}
