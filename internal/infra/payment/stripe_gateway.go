// Package payment integrates the Stripe hosted checkout.
package payment

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"natours/config"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/entity"
	"natours/internal/domain/service"
	"natours/internal/errors"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

const eventCheckoutCompleted = "checkout.session.completed"

type stripeGateway struct {
	sessions      session.Client
	webhookSecret string
	currency      string
}

// NewStripeGateway creates a PaymentGateway backed by Stripe Checkout.
func NewStripeGateway(cfg *config.Config) (service.PaymentGateway, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	return &stripeGateway{
		sessions: session.Client{
			B:   stripe.GetBackend(stripe.APIBackend),
			Key: cfg.Stripe.SecretKey,
		},
		webhookSecret: cfg.Stripe.WebhookSecret,
		currency:      strings.ToLower(cfg.Stripe.Currency),
	}, nil
}

// CreateCheckoutSession opens a payment-mode session with one line item for the tour.
func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, req service.CheckoutRequest) (*entity.CheckoutSession, error) {
	params := checkoutParams(req, g.currency)
	params.Context = ctx

	sess, err := g.sessions.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "create checkout session")
	}

	return &entity.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

func checkoutParams(req service.CheckoutRequest, currency string) *stripe.CheckoutSessionParams {
	product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name:        stripe.String(req.Tour.Name + " Tour"),
		Description: stripe.String(req.Tour.Summary),
	}
	if req.ImageURL != "" {
		product.Images = stripe.StringSlice([]string{req.ImageURL})
	}

	return &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		CustomerEmail:     stripe.String(req.CustomerEmail),
		ClientReferenceID: stripe.String(req.Tour.ID.String()),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripe.String(currency),
					UnitAmount:  stripe.Int64(int64(math.Round(req.Tour.Price * 100))),
					ProductData: product,
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
}

// ParseCompletedCheckout verifies the Stripe-Signature header and decodes a completed session.
func (g *stripeGateway) ParseCompletedCheckout(payload []byte, signature string) (*entity.CheckoutCompletion, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		Tolerance:                webhook.DefaultTolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, domainerrors.ErrWebhookSignature.WithDetails(err.Error())
	}

	if event.Type != eventCheckoutCompleted || event.Data == nil {
		return nil, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, errors.Wrap(err, "decode checkout session")
	}

	email := sess.CustomerEmail
	if email == "" && sess.CustomerDetails != nil {
		email = sess.CustomerDetails.Email
	}

	return &entity.CheckoutCompletion{
		TourID:        sess.ClientReferenceID,
		CustomerEmail: email,
		AmountTotal:   sess.AmountTotal,
	}, nil
}
