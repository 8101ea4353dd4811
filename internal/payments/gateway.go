package payments

import (
	"context"
	"errors"
)

// ErrGatewayDisabled means the provider's credentials are not configured.
var ErrGatewayDisabled = errors.New("payment gateway not configured")

// ProviderResult is the provider's view of a payment attempt: whether the
// money moved and which user the attempt was created for. OwnerID comes from
// metadata the server embedded at creation time, so verification can reject
// an intent that belongs to someone else.
type ProviderResult struct {
	Succeeded bool
	OwnerID   string
}

// StripeGateway creates and verifies Stripe payment intents.
type StripeGateway interface {
	CreateIntent(ctx context.Context, userID string, amountCents int64, currency string) (intentID, clientSecret string, err error)
	IntentResult(ctx context.Context, intentID string) (ProviderResult, error)
}

// PayPalGateway creates and captures PayPal orders.
type PayPalGateway interface {
	CreateOrder(ctx context.Context, userID string, amountCents int64, currency string) (orderID, approveURL string, err error)
	CaptureOrder(ctx context.Context, orderID string) (ProviderResult, error)
}

// DisabledStripe is used when no Stripe key is configured.
type DisabledStripe struct{}

func (DisabledStripe) CreateIntent(context.Context, string, int64, string) (string, string, error) {
	return "", "", ErrGatewayDisabled
}

func (DisabledStripe) IntentResult(context.Context, string) (ProviderResult, error) {
	return ProviderResult{}, ErrGatewayDisabled
}

// DisabledPayPal is used when no PayPal credentials are configured.
type DisabledPayPal struct{}

func (DisabledPayPal) CreateOrder(context.Context, string, int64, string) (string, string, error) {
	return "", "", ErrGatewayDisabled
}

func (DisabledPayPal) CaptureOrder(context.Context, string) (ProviderResult, error) {
	return ProviderResult{}, ErrGatewayDisabled
}

var (
	_ StripeGateway = DisabledStripe{}
	_ PayPalGateway = DisabledPayPal{}
)
