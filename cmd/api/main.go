package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/llamatrip/payments-backend/internal/config"
	"github.com/llamatrip/payments-backend/internal/controller"
	"github.com/llamatrip/payments-backend/internal/handler"
	"github.com/llamatrip/payments-backend/internal/service"
	"github.com/llamatrip/payments-backend/pkg/logger"
	"github.com/llamatrip/payments-backend/pkg/payment"
	"github.com/llamatrip/payments-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	cfg := config.LoadConfig()

	zapLogger, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	// Stripe service
	stripeService := payment.NewStripeService(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, cfg.AppURL)

	// Payment service
	paymentService := service.NewPaymentService(stripeService, zapLogger)

	// Validator
	validator := utils.NewValidator()

	// Controllers & handlers
	paymentController := controller.NewPaymentController(paymentService)
	paymentHandler := handler.NewPaymentHandler(paymentController, validator)
	healthHandler := handler.NewHealthHandler(cfg.ServiceName)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AppURL,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST",
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)
	api.Post("/create-checkout-session", paymentHandler.CreateCheckoutSession)
	api.Get("/checkout-session/:sessionId", paymentHandler.GetCheckoutSession)

	// Stripe webhook (raw body, verified by signature)
	api.Post("/webhook", paymentHandler.HandleStripeWebhook)

	zapLogger.Info("LlamaTrip Payments API starting",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	log.Fatal(app.Listen(":" + cfg.Port))
}
