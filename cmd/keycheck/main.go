// keycheck verifies the configured Stripe credentials: it retrieves the
// account behind STRIPE_SECRET_KEY and, when STRIPE_PRICE_ID is set,
// checks that the subscription price exists.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/account"
	"github.com/stripe/stripe-go/v74/price"

	"github.com/llamatrip/payments-backend/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	if cfg.Stripe.SecretKey == "" {
		log.Fatal("STRIPE_SECRET_KEY is not set")
	}
	stripe.Key = cfg.Stripe.SecretKey

	fmt.Println("LlamaTrip - Stripe keys checker")
	fmt.Printf("Secret key is configured (%s...)\n", keyPrefix(cfg.Stripe.SecretKey))

	acct, err := account.Get()
	if err != nil {
		log.Fatalf("Error connecting to Stripe: %v", err)
	}

	fmt.Println("Stripe account connected successfully")
	fmt.Printf("  Account ID: %s\n", acct.ID)
	if acct.BusinessProfile != nil && acct.BusinessProfile.Name != "" {
		fmt.Printf("  Display name: %s\n", acct.BusinessProfile.Name)
	}
	fmt.Printf("  Country: %s\n", acct.Country)

	if cfg.Stripe.PriceID == "" {
		return
	}

	p, err := price.Get(cfg.Stripe.PriceID, nil)
	if err != nil {
		// Not fatal: the account works, only the price needs fixing.
		fmt.Printf("Error retrieving price %s: %v\n", cfg.Stripe.PriceID, err)
		return
	}

	interval := "one-time"
	if p.Recurring != nil {
		interval = string(p.Recurring.Interval)
	}

	fmt.Println("Price configuration verified")
	fmt.Printf("  Price ID: %s\n", p.ID)
	fmt.Printf("  Amount: %.2f %s\n", float64(p.UnitAmount)/100, strings.ToUpper(string(p.Currency)))
	fmt.Printf("  Interval: %s\n", interval)
}

func keyPrefix(key string) string {
	if len(key) > 12 {
		return key[:12]
	}
	return key
}
