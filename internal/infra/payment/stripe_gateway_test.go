package payment

import (
	"testing"
	"time"

	"natours/config"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/entity"
	"natours/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func newTestGateway(t *testing.T) *stripeGateway {
	t.Helper()
	gw, err := NewStripeGateway(&config.Config{Stripe: &config.StripeConfig{
		SecretKey:     "sk_test_123",
		WebhookSecret: testWebhookSecret,
		Currency:      "USD",
	}})
	require.NoError(t, err)

	return gw.(*stripeGateway)
}

func sign(payload string) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	}).Header
}

func TestCheckoutParams(t *testing.T) {
	tour := &entity.Tour{ID: uuid.New(), Name: "The Forest Hiker", Summary: "Breathtaking hike", Price: 397}

	params := checkoutParams(service.CheckoutRequest{
		Tour:          tour,
		CustomerEmail: "laura@example.com",
		SuccessURL:    "http://localhost:8000/my-tours?alert=booking",
		CancelURL:     "http://localhost:8000/tour/the-forest-hiker",
		ImageURL:      "http://localhost:8000/img/tours/tour-1-cover.jpg",
	}, "usd")

	assert.Equal(t, "payment", *params.Mode)
	assert.Equal(t, tour.ID.String(), *params.ClientReferenceID)
	assert.Equal(t, "laura@example.com", *params.CustomerEmail)
	require.Len(t, params.LineItems, 1)
	item := params.LineItems[0]
	assert.Equal(t, int64(39700), *item.PriceData.UnitAmount)
	assert.Equal(t, "usd", *item.PriceData.Currency)
	assert.Equal(t, "The Forest Hiker Tour", *item.PriceData.ProductData.Name)
	assert.Equal(t, int64(1), *item.Quantity)
	require.Len(t, item.PriceData.ProductData.Images, 1)
}

func TestParseCompletedCheckout(t *testing.T) {
	gw := newTestGateway(t)
	assert.Equal(t, "usd", gw.currency)

	tourID := uuid.NewString()
	completed := `{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_1","object":"checkout.session","client_reference_id":"` + tourID + `","customer_email":"laura@example.com","amount_total":39700}}}`

	got, err := gw.ParseCompletedCheckout([]byte(completed), sign(completed))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, tourID, got.TourID)
	assert.Equal(t, "laura@example.com", got.CustomerEmail)
	assert.Equal(t, int64(39700), got.AmountTotal)

	other := `{"id":"evt_2","object":"event","type":"payment_intent.created","data":{"object":{}}}`
	got, err = gw.ParseCompletedCheckout([]byte(other), sign(other))
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = gw.ParseCompletedCheckout([]byte(completed), "t=1,v1=bad")
	assert.ErrorIs(t, err, domainerrors.ErrWebhookSignature)
}

func TestNewStripeGateway_RequiresKey(t *testing.T) {
	_, err := NewStripeGateway(&config.Config{})
	assert.Error(t, err)
}
