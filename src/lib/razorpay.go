package lib

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"hbs/src/config"
	"log"

	razorpay "github.com/razorpay/razorpay-go"
)

// PaymentGateway is the core-facing contract with the remote payment
// provider. Amounts are always in the gateway's minor currency unit.
type PaymentGateway interface {
	CreateOrder(amountMinor int64, currency string, receipt string) (string, error)
	Refund(paymentID string, amountMinor int64) error
}

var gateway PaymentGateway

// GetPaymentGateway returns the gateway for the configured provider, so
// refunds for a checkout-paid booking go back through Stripe and never
// hit the order/signature provider.
func GetPaymentGateway() PaymentGateway {
	if gateway != nil {
		return gateway
	}
	cfg := config.GetPaymentConfig()
	if cfg.Provider == "stripe" {
		gateway = &stripeGateway{}
		return gateway
	}
	gateway = &razorpayGateway{client: razorpay.NewClient(cfg.KeyID, cfg.KeySecret)}
	return gateway
}

// NewPaymentGateway replaces the gateway instance, used by tests.
func NewPaymentGateway(g PaymentGateway) PaymentGateway {
	gateway = g
	return gateway
}

type razorpayGateway struct {
	client *razorpay.Client
}

func (g *razorpayGateway) CreateOrder(amountMinor int64, currency string, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":          amountMinor,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		log.Printf("Failed to create payment order: %s\n", err.Error())
		return "", err
	}
	id, ok := order["id"].(string)
	if !ok {
		return "", errors.New("payment order response is missing an id")
	}
	return id, nil
}

func (g *razorpayGateway) Refund(paymentID string, amountMinor int64) error {
	data := map[string]interface{}{}
	_, err := g.client.Payment.Refund(paymentID, int(amountMinor), data, nil)
	if err != nil {
		log.Printf("Failed to refund payment %s: %s\n", paymentID, err.Error())
		return err
	}
	return nil
}

// PaymentSignature computes the capture signature the gateway attaches to
// a successful payment: HMAC-SHA256 over "orderID|paymentID" keyed with
// the pre-shared secret.
func PaymentSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPaymentSignature checks the gateway's capture signature in
// constant time.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	expected := PaymentSignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhookSignature checks the webhook body signature: HMAC-SHA256
// over the raw payload keyed with the webhook secret.
func VerifyWebhookSignature(body []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
