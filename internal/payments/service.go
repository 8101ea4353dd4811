package payments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/shared/telemetry"
	"careerforge-backend/internal/users"
)

// ErrNotVerified means the provider did not confirm the payment, or the
// payment belongs to a different user than the caller.
var ErrNotVerified = errors.New("payment not successful or user mismatch")

// Service runs the premium upgrade flows. Each flow creates a payment row,
// has the provider confirm the money moved, checks the embedded owner against
// the caller, and only then flips the premium flag.
type Service struct {
	Repo   Repo
	Stripe StripeGateway
	PayPal PayPalGateway
	Users  users.Repo

	// Premium price applied when the client does not override it.
	AmountCents int64
	Currency    string
}

// CreateStripeIntent creates a Stripe payment intent for the premium upgrade.
func (s *Service) CreateStripeIntent(ctx context.Context, userID string, in contract.StripeIntentInput) (contract.StripeIntent, error) {
	amount, currency := s.price(in.AmountCents, in.Currency)

	intentID, clientSecret, err := s.Stripe.CreateIntent(ctx, userID, amount, currency)
	if err != nil {
		return contract.StripeIntent{}, err
	}

	if err := s.record(ctx, userID, ProviderStripe, intentID, amount, currency); err != nil {
		return contract.StripeIntent{}, err
	}
	return contract.StripeIntent{PaymentIntentID: intentID, ClientSecret: clientSecret}, nil
}

// VerifyStripe confirms the intent with Stripe and flips premium on success.
func (s *Service) VerifyStripe(ctx context.Context, userID, intentID string) (contract.PremiumStatus, error) {
	result, err := s.Stripe.IntentResult(ctx, intentID)
	if err != nil {
		return contract.PremiumStatus{}, err
	}
	return s.settle(ctx, userID, ProviderStripe, intentID, result)
}

// CreatePayPalOrder creates a PayPal order for the premium upgrade.
func (s *Service) CreatePayPalOrder(ctx context.Context, userID string) (contract.PayPalOrder, error) {
	amount, currency := s.price(0, "")

	orderID, approveURL, err := s.PayPal.CreateOrder(ctx, userID, amount, currency)
	if err != nil {
		return contract.PayPalOrder{}, err
	}

	if err := s.record(ctx, userID, ProviderPayPal, orderID, amount, currency); err != nil {
		return contract.PayPalOrder{}, err
	}
	return contract.PayPalOrder{OrderID: orderID, ApproveURL: approveURL}, nil
}

// CapturePayPal captures the approved order and flips premium on success.
func (s *Service) CapturePayPal(ctx context.Context, userID, orderID string) (contract.PremiumStatus, error) {
	result, err := s.PayPal.CaptureOrder(ctx, orderID)
	if err != nil {
		return contract.PremiumStatus{}, err
	}
	return s.settle(ctx, userID, ProviderPayPal, orderID, result)
}

// settle applies the provider's verdict: premium on success with a matching
// owner, ErrNotVerified otherwise. The payment row records the outcome either
// way.
func (s *Service) settle(ctx context.Context, userID, provider, ref string, result ProviderResult) (contract.PremiumStatus, error) {
	if !result.Succeeded || result.OwnerID != userID {
		if err := s.Repo.MarkStatus(ctx, provider, ref, StatusFailed); err != nil {
			telemetry.Error("payments.mark_failed", map[string]any{"provider": provider, "ref": ref, "error": err.Error()})
		}
		return contract.PremiumStatus{}, ErrNotVerified
	}

	if err := s.Repo.MarkStatus(ctx, provider, ref, StatusVerified); err != nil {
		return contract.PremiumStatus{}, err
	}
	if err := s.Users.SetPremium(ctx, userID, true); err != nil {
		return contract.PremiumStatus{}, err
	}
	return contract.PremiumStatus{Premium: true}, nil
}

func (s *Service) record(ctx context.Context, userID, provider, ref string, amount int64, currency string) error {
	now := time.Now().UTC()
	return s.Repo.Create(ctx, Payment{
		ID:          uuid.NewString(),
		UserID:      userID,
		Provider:    provider,
		ProviderRef: ref,
		AmountCents: amount,
		Currency:    currency,
		Status:      StatusCreated,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *Service) price(amount int64, currency string) (int64, string) {
	if amount <= 0 {
		amount = s.AmountCents
	}
	if currency == "" {
		currency = s.Currency
	}
	return amount, currency
}
