package payments

import (
	"context"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

const metadataUserKey = "userId"

// StripeClient implements StripeGateway against the Stripe API.
type StripeClient struct {
	api *client.API
}

func NewStripeClient(secretKey string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{api: api}
}

// CreateIntent creates a payment intent tagged with the caller's user id.
func (s *StripeClient) CreateIntent(ctx context.Context, userID string, amountCents int64, currency string) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(strings.ToLower(currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata(metadataUserKey, userID)

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", "", err
	}
	return pi.ID, pi.ClientSecret, nil
}

// IntentResult reports whether the intent succeeded and who it was created for.
func (s *StripeClient) IntentResult(ctx context.Context, intentID string) (ProviderResult, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := s.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		return ProviderResult{}, err
	}
	return ProviderResult{
		Succeeded: pi.Status == stripe.PaymentIntentStatusSucceeded,
		OwnerID:   pi.Metadata[metadataUserKey],
	}, nil
}

var _ StripeGateway = (*StripeClient)(nil)
