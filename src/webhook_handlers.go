package main

import (
	"hbs/src/common"
	"hbs/src/config"
	"hbs/src/lib"
	"hbs/src/types"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82/webhook"
	"github.com/tidwall/gjson"
)

// webhookHandlers are unauthenticated; every request is authenticated by
// its gateway signature instead of a bearer token.
func webhookHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/webhook/payment", func(ctx *gin.Context) {
			body, err := io.ReadAll(ctx.Request.Body)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			cfg := config.GetPaymentConfig()
			signature := ctx.GetHeader("X-Razorpay-Signature")
			if cfg.WebhookSecret == "" || !lib.VerifyWebhookSignature(body, signature, cfg.WebhookSecret) {
				abortWithError(ctx, common.ErrSignatureInvalid)
				return
			}

			event := gjson.GetBytes(body, "event").String()
			if event != "payment.captured" {
				// Acknowledge events we do not act on so the gateway
				// stops redelivering them.
				ctx.Status(http.StatusNoContent)
				return
			}
			entity := gjson.GetBytes(body, "payload.payment.entity")
			paymentID := entity.Get("id").String()
			orderID := entity.Get("order_id").String()
			if paymentID == "" || orderID == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "payment entity is missing id or order_id"})
				return
			}

			// The body HMAC above already authenticated this delivery;
			// the capture path still expects the per-payment signature.
			captureSig := lib.PaymentSignature(orderID, paymentID, cfg.KeySecret)
			if err := common.CapturePayment(paymentID, orderID, captureSig); err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		POST("/webhook/payment/verify", func(ctx *gin.Context) {
			var body types.PaymentVerifyRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := common.CapturePayment(body.PaymentID, body.OrderID, body.Signature); err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"status": types.BOOKING_CONFIRMED}})
		}).
		POST("/webhook/stripe", func(ctx *gin.Context) {
			body, err := io.ReadAll(ctx.Request.Body)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			event, err := webhook.ConstructEvent(body, ctx.GetHeader("Stripe-Signature"), os.Getenv("STRIPE_WEBHOOK_SECRET"))
			if err != nil {
				log.Printf("Rejected stripe webhook: %s\n", err.Error())
				abortWithError(ctx, common.ErrSignatureInvalid)
				return
			}
			if event.Type != "checkout.session.completed" {
				ctx.Status(http.StatusNoContent)
				return
			}
			session := gjson.ParseBytes(event.Data.Raw)
			sessionID := session.Get("id").String()
			paymentRef := session.Get("payment_intent").String()
			if sessionID == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "checkout session is missing an id"})
				return
			}
			if err := common.CaptureCheckoutSession(sessionID, paymentRef); err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
