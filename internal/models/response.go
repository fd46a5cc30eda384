package models

// ErrorResponse carries a stable top-level error plus the raw underlying
// message for diagnostics.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WebhookAck acknowledges a verified webhook delivery. Error is set when
// dispatch failed after verification; the HTTP status stays 200 either
// way so Stripe does not redeliver the event.
type WebhookAck struct {
	Received  bool   `json:"received"`
	EventType string `json:"eventType,omitempty"`
	Error     string `json:"error,omitempty"`
}

func ErrorResponseWithMessage(err string, message string) ErrorResponse {
	return ErrorResponse{
		Error:   err,
		Message: message,
	}
}
