package controller

import (
	"github.com/stripe/stripe-go/v74"

	"github.com/llamatrip/payments-backend/internal/models"
	"github.com/llamatrip/payments-backend/internal/service"
)

type PaymentController struct {
	paymentService *service.PaymentService
}

func NewPaymentController(paymentService *service.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

func (c *PaymentController) CreateCheckoutSession(priceID string) (*models.CheckoutSessionResponse, error) {
	return c.paymentService.CreateCheckoutSession(priceID)
}

func (c *PaymentController) GetCheckoutSession(sessionID string) (*models.CheckoutSessionDetails, error) {
	return c.paymentService.GetCheckoutSession(sessionID)
}

func (c *PaymentController) VerifyWebhook(payload []byte, signature string) (*stripe.Event, error) {
	return c.paymentService.VerifyWebhook(payload, signature)
}

func (c *PaymentController) DispatchWebhookEvent(event *stripe.Event) error {
	return c.paymentService.DispatchWebhookEvent(event)
}
