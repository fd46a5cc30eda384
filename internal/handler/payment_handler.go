package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/llamatrip/payments-backend/internal/controller"
	"github.com/llamatrip/payments-backend/internal/models"
	"github.com/llamatrip/payments-backend/pkg/utils"
)

type PaymentHandler struct {
	paymentController *controller.PaymentController
	validator         *utils.Validator
}

func NewPaymentHandler(paymentController *controller.PaymentController, validator *utils.Validator) *PaymentHandler {
	return &PaymentHandler{
		paymentController: paymentController,
		validator:         validator,
	}
}

func (h *PaymentHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	var req models.CreateCheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Price ID is required",
		})
	}

	// Validate before touching the provider
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Price ID is required",
		})
	}

	session, err := h.paymentController.CreateCheckoutSession(req.PriceID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			models.ErrorResponseWithMessage("Failed to create checkout session", err.Error()),
		)
	}

	return c.JSON(session)
}

func (h *PaymentHandler) GetCheckoutSession(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	details, err := h.paymentController.GetCheckoutSession(sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			models.ErrorResponseWithMessage("Failed to retrieve session", err.Error()),
		)
	}

	return c.JSON(details)
}

// HandleStripeWebhook verifies the signature over the raw body, then
// dispatches the event. A signature failure is a 400; once the signature
// has verified, the response is 200 even if dispatch errored — anything
// else makes Stripe redeliver the event indefinitely.
func (h *PaymentHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	payload := c.Body()
	signatureHeader := c.Get("Stripe-Signature")

	event, err := h.paymentController.VerifyWebhook(payload, signatureHeader)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(fmt.Sprintf("Webhook Error: %v", err))
	}

	if err := h.paymentController.DispatchWebhookEvent(event); err != nil {
		return c.JSON(models.WebhookAck{
			Received: true,
			Error:    err.Error(),
		})
	}

	return c.JSON(models.WebhookAck{
		Received:  true,
		EventType: string(event.Type),
	})
}
