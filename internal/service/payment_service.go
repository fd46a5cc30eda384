package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"

	"github.com/llamatrip/payments-backend/internal/models"
	"github.com/llamatrip/payments-backend/pkg/payment"
)

// PaymentService is a stateless translator between the relay's HTTP
// surface and the payment provider. It keeps no record of sessions or
// events past the request that produced them.
type PaymentService struct {
	provider payment.Provider
	logger   *zap.Logger
}

func NewPaymentService(provider payment.Provider, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		provider: provider,
		logger:   logger,
	}
}

func (s *PaymentService) CreateCheckoutSession(priceID string) (*models.CheckoutSessionResponse, error) {
	session, err := s.provider.CreateCheckoutSession(priceID)
	if err != nil {
		return nil, err
	}

	return &models.CheckoutSessionResponse{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

func (s *PaymentService) GetCheckoutSession(sessionID string) (*models.CheckoutSessionDetails, error) {
	session, err := s.provider.RetrieveCheckoutSession(sessionID)
	if err != nil {
		return nil, err
	}

	details := &models.CheckoutSessionDetails{
		Status:      string(session.Status),
		AmountTotal: session.AmountTotal,
		Currency:    string(session.Currency),
	}

	// A session can complete without an expanded customer or
	// subscription; the projection just omits those fields.
	if session.CustomerDetails != nil {
		details.CustomerEmail = session.CustomerDetails.Email
	}
	if session.Subscription != nil {
		details.Subscription = session.Subscription.ID
	}

	return details, nil
}

func (s *PaymentService) VerifyWebhook(payload []byte, signature string) (*stripe.Event, error) {
	return s.provider.VerifyWebhook(payload, signature)
}

// DispatchWebhookEvent branches on the verified event's type and logs a
// summary of its key fields. Each case is an extension point for future
// persistence; nothing is stored today.
func (s *PaymentService) DispatchWebhookEvent(event *stripe.Event) error {
	// A payload can verify without carrying a data object; there is
	// nothing to summarize then, and the handler still answers 200.
	if event.Data == nil {
		return fmt.Errorf("event %s has no data object", event.ID)
	}

	switch event.Type {
	case "customer.subscription.created", "customer.subscription.updated", "customer.subscription.deleted":
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			return err
		}

		fields := []zap.Field{
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.String("subscription_id", subscription.ID),
			zap.String("status", string(subscription.Status)),
			zap.Time("current_period_end", time.Unix(subscription.CurrentPeriodEnd, 0)),
			zap.Bool("cancel_at_period_end", subscription.CancelAtPeriodEnd),
		}
		if subscription.Customer != nil {
			fields = append(fields, zap.String("customer_id", subscription.Customer.ID))
		}
		s.logger.Info("subscription lifecycle event", fields...)

	case "customer.subscription.trial_will_end":
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			return err
		}

		fields := []zap.Field{
			zap.String("event_id", event.ID),
			zap.String("subscription_id", subscription.ID),
			zap.Time("trial_end", time.Unix(subscription.TrialEnd, 0)),
		}
		if subscription.Customer != nil {
			fields = append(fields, zap.String("customer_id", subscription.Customer.ID))
		}
		s.logger.Info("subscription trial ending soon", fields...)

	case "invoice.payment_succeeded":
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return err
		}

		fields := []zap.Field{
			zap.String("event_id", event.ID),
			zap.String("invoice_id", invoice.ID),
			zap.String("customer_email", invoice.CustomerEmail),
			zap.Int64("amount_paid", invoice.AmountPaid),
			zap.String("currency", string(invoice.Currency)),
		}
		if invoice.Subscription != nil {
			fields = append(fields, zap.String("subscription_id", invoice.Subscription.ID))
		}
		s.logger.Info("invoice payment succeeded", fields...)

	case "invoice.payment_failed":
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return err
		}

		fields := []zap.Field{
			zap.String("event_id", event.ID),
			zap.String("invoice_id", invoice.ID),
			zap.String("customer_email", invoice.CustomerEmail),
			zap.Int64("amount_due", invoice.AmountDue),
			zap.String("currency", string(invoice.Currency)),
			zap.Int64("attempt_count", invoice.AttemptCount),
		}
		if invoice.Subscription != nil {
			fields = append(fields, zap.String("subscription_id", invoice.Subscription.ID))
		}
		s.logger.Warn("invoice payment failed", fields...)

	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return err
		}

		s.logger.Info("payment intent succeeded",
			zap.String("event_id", event.ID),
			zap.String("payment_intent_id", intent.ID),
			zap.Int64("amount", intent.Amount),
			zap.String("currency", string(intent.Currency)),
		)

	case "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return err
		}

		fields := []zap.Field{
			zap.String("event_id", event.ID),
			zap.String("payment_intent_id", intent.ID),
			zap.Int64("amount", intent.Amount),
			zap.String("currency", string(intent.Currency)),
		}
		if intent.LastPaymentError != nil {
			fields = append(fields, zap.String("failure_message", intent.LastPaymentError.Msg))
		}
		s.logger.Warn("payment intent failed", fields...)

	default:
		s.logger.Info("unhandled webhook event type",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
		)
	}

	return nil
}
