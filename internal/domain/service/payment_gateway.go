package service

import (
	"context"

	"natours/internal/domain/entity"
)

// CheckoutRequest describes the single line item a customer pays for.
type CheckoutRequest struct {
	Tour          *entity.Tour
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	ImageURL      string
}

// PaymentGateway creates hosted checkout sessions and verifies their webhooks.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*entity.CheckoutSession, error)

	// ParseCompletedCheckout verifies a webhook payload. It returns nil without error
	// for events other than a completed checkout.
	ParseCompletedCheckout(payload []byte, signature string) (*entity.CheckoutCompletion, error)
}
