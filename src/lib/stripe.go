package lib

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/stripe/stripe-go/v82"
)

var stripeClient *stripe.Client

func GetStripeClient() *stripe.Client {
	if stripeClient != nil {
		return stripeClient
	}
	apiKey := os.Getenv("STRIPE_SECRET_KEY")
	sc := stripe.NewClient(apiKey)
	stripeClient = sc

	return sc
}

func NewStripeClient(c *stripe.Client) {
	stripeClient = c
}

// stripeGateway is the PaymentGateway used when the checkout provider is
// selected. Orders are replaced by checkout sessions on this path, so
// only refunds go through here; the stored payment reference is the
// payment intent id from the completed session.
type stripeGateway struct{}

func (g *stripeGateway) CreateOrder(amountMinor int64, currency string, receipt string) (string, error) {
	return "", errors.New("checkout provider does not create payment orders")
}

func (g *stripeGateway) Refund(paymentIntentID string, amountMinor int64) error {
	sc := GetStripeClient()
	_, err := sc.V1Refunds.Create(context.Background(), &stripe.RefundCreateParams{
		PaymentIntent: stripe.String(paymentIntentID),
		Amount:        stripe.Int64(amountMinor),
	})
	if err != nil {
		log.Printf("Failed to refund payment %s: %s\n", paymentIntentID, err.Error())
		return err
	}
	return nil
}

// CreateBookingCheckout opens a Stripe Checkout session for a booking.
// Used when PAYMENT_PROVIDER=stripe is selected instead of the default
// order/signature flow.
func CreateBookingCheckout(bookingID uint, amountMinor int64, currency, successURL string) (sessionID string, url string, err error) {
	sc := GetStripeClient()
	params := stripe.CheckoutSessionCreateParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(fmt.Sprintf("%d", bookingID)),
		SuccessURL:        stripe.String(successURL),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(amountMinor),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Booking #%d", bookingID)),
					},
				},
			},
		},
	}
	checkoutSession, err := sc.V1CheckoutSessions.Create(context.Background(), &params)
	if err != nil {
		return "", "", err
	}
	return checkoutSession.ID, checkoutSession.URL, nil
}
