package payment

import (
	"github.com/stripe/stripe-go/v74"
)

// Provider abstracts the hosted-checkout operations the relay needs, so
// handlers can be exercised against a stub without network access.
type Provider interface {
	CreateCheckoutSession(priceID string) (*stripe.CheckoutSession, error)
	RetrieveCheckoutSession(sessionID string) (*stripe.CheckoutSession, error)
	VerifyWebhook(payload []byte, signature string) (*stripe.Event, error)
}
