package payment

import (
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
	"github.com/stripe/stripe-go/v74/webhook"
)

type StripeService struct {
	webhookSecret string
	appURL        string
}

func NewStripeService(secretKey string, webhookSecret string, appURL string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{
		webhookSecret: webhookSecret,
		appURL:        appURL,
	}
}

// checkoutParams builds the fixed session shape: subscription mode, a
// single line item of quantity 1, and redirect URLs under the app origin.
// Stripe substitutes {CHECKOUT_SESSION_ID} at redirect time.
func (s *StripeService) checkoutParams(priceID string) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:               stripe.String(s.appURL + "/?subscribed=success&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:                stripe.String(s.appURL + "/?subscribed=cancelled"),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionAuto)),
	}

	params.AddMetadata("product", "LlamaTrip Travel Planning")

	return params
}

func (s *StripeService) CreateCheckoutSession(priceID string) (*stripe.CheckoutSession, error) {
	return session.New(s.checkoutParams(priceID))
}

func (s *StripeService) RetrieveCheckoutSession(sessionID string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.AddExpand("customer")
	params.AddExpand("subscription")

	return session.Get(sessionID, params)
}

func (s *StripeService) VerifyWebhook(payload []byte, signature string) (*stripe.Event, error) {
	// API version mismatch is ignored: the SDK pin and the webhook
	// endpoint version drift independently in the Stripe dashboard.
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
	if err != nil {
		return nil, err
	}

	return &event, nil
}
