package service_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/llamatrip/payments-backend/internal/service"
)

func newDispatchService(t *testing.T) (*service.PaymentService, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	return service.NewPaymentService(nil, zap.New(core)), logs
}

func event(eventType string, raw string) *stripe.Event {
	return &stripe.Event{
		ID:   "evt_test",
		Type: eventType,
		Data: &stripe.EventData{Raw: json.RawMessage(raw)},
	}
}

func TestDispatchWebhookEvent_RecognizedTypes(t *testing.T) {
	t.Parallel()

	subscription := `{"id":"sub_1","status":"active","customer":"cus_1","current_period_end":1735689600,"cancel_at_period_end":false,"trial_end":1735689600}`
	invoice := `{"id":"in_1","customer_email":"a@b.com","amount_paid":1999,"amount_due":1999,"currency":"usd","subscription":"sub_1","attempt_count":1}`
	intent := `{"id":"pi_1","amount":1999,"currency":"usd","status":"succeeded"}`

	testCases := []struct {
		eventType   string
		raw         string
		wantMessage string
	}{
		{"customer.subscription.created", subscription, "subscription lifecycle event"},
		{"customer.subscription.updated", subscription, "subscription lifecycle event"},
		{"customer.subscription.deleted", subscription, "subscription lifecycle event"},
		{"customer.subscription.trial_will_end", subscription, "subscription trial ending soon"},
		{"invoice.payment_succeeded", invoice, "invoice payment succeeded"},
		{"invoice.payment_failed", invoice, "invoice payment failed"},
		{"payment_intent.succeeded", intent, "payment intent succeeded"},
		{"payment_intent.payment_failed", intent, "payment intent failed"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.eventType, func(t *testing.T) {
			t.Parallel()

			svc, logs := newDispatchService(t)

			require.NoError(t, svc.DispatchWebhookEvent(event(tc.eventType, tc.raw)))
			require.Equal(t, 1, logs.Len())
			require.Equal(t, tc.wantMessage, logs.All()[0].Message)
		})
	}
}

func TestDispatchWebhookEvent_SubscriptionFields(t *testing.T) {
	t.Parallel()

	svc, logs := newDispatchService(t)

	raw := `{"id":"sub_42","status":"past_due","customer":"cus_7","current_period_end":1735689600,"cancel_at_period_end":true}`
	require.NoError(t, svc.DispatchWebhookEvent(event("customer.subscription.updated", raw)))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	require.Equal(t, "sub_42", fields["subscription_id"])
	require.Equal(t, "past_due", fields["status"])
	require.Equal(t, "cus_7", fields["customer_id"])
	require.Equal(t, true, fields["cancel_at_period_end"])
}

func TestDispatchWebhookEvent_UnrecognizedType(t *testing.T) {
	t.Parallel()

	svc, logs := newDispatchService(t)

	require.NoError(t, svc.DispatchWebhookEvent(event("charge.refunded", `{"id":"ch_1"}`)))
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "unhandled webhook event type", logs.All()[0].Message)
}

func TestDispatchWebhookEvent_MissingDataObject(t *testing.T) {
	t.Parallel()

	svc, logs := newDispatchService(t)

	err := svc.DispatchWebhookEvent(&stripe.Event{
		ID:   "evt_nodata",
		Type: "invoice.payment_succeeded",
	})
	require.EqualError(t, err, "event evt_nodata has no data object")
	require.Zero(t, logs.Len())
}

func TestDispatchWebhookEvent_MalformedPayload(t *testing.T) {
	t.Parallel()

	malformed := []string{
		"customer.subscription.created",
		"customer.subscription.trial_will_end",
		"invoice.payment_succeeded",
		"invoice.payment_failed",
		"payment_intent.succeeded",
		"payment_intent.payment_failed",
	}

	for _, eventType := range malformed {
		eventType := eventType
		t.Run(eventType, func(t *testing.T) {
			t.Parallel()

			svc, logs := newDispatchService(t)

			require.Error(t, svc.DispatchWebhookEvent(event(eventType, `{"id":`)))
			require.Zero(t, logs.Len(), "a malformed payload must not produce a dispatch log entry")
		})
	}
}
