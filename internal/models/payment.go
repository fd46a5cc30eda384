package models

type CreateCheckoutSessionRequest struct {
	PriceID string `json:"priceId" validate:"required"`
}

type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// CheckoutSessionDetails is the normalized projection served to the
// success page. Optional fields are omitted rather than nulled when the
// provider has no record for them.
type CheckoutSessionDetails struct {
	Status        string `json:"status"`
	CustomerEmail string `json:"customer_email,omitempty"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
	Subscription  string `json:"subscription,omitempty"`
}
