package payments

import (
	"context"
	"errors"
	"testing"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/users"
)

type stubStripe struct {
	intentID string
	result   ProviderResult
	err      error
}

func (s stubStripe) CreateIntent(context.Context, string, int64, string) (string, string, error) {
	return s.intentID, "secret_" + s.intentID, s.err
}

func (s stubStripe) IntentResult(context.Context, string) (ProviderResult, error) {
	return s.result, s.err
}

type stubPayPal struct {
	orderID string
	result  ProviderResult
	err     error
}

func (s stubPayPal) CreateOrder(context.Context, string, int64, string) (string, string, error) {
	return s.orderID, "https://paypal.example/approve/" + s.orderID, s.err
}

func (s stubPayPal) CaptureOrder(context.Context, string) (ProviderResult, error) {
	return s.result, s.err
}

func newService(stripe StripeGateway, pp PayPalGateway) (*Service, *MemoryRepo, *users.MemoryRepo) {
	repo := NewMemoryRepo()
	userRepo := users.NewMemoryRepo()
	svc := &Service{
		Repo:        repo,
		Stripe:      stripe,
		PayPal:      pp,
		Users:       userRepo,
		AmountCents: 999,
		Currency:    "usd",
	}
	return svc, repo, userRepo
}

func TestCreateStripeIntentRecordsAttempt(t *testing.T) {
	svc, repo, _ := newService(stubStripe{intentID: "pi_1"}, stubPayPal{})

	intent, err := svc.CreateStripeIntent(context.Background(), "user-1", contract.StripeIntentInput{})
	if err != nil {
		t.Fatalf("CreateStripeIntent: %v", err)
	}
	if intent.PaymentIntentID != "pi_1" || intent.ClientSecret == "" {
		t.Fatalf("unexpected intent: %+v", intent)
	}

	p, err := repo.GetByProviderRef(context.Background(), ProviderStripe, "pi_1")
	if err != nil {
		t.Fatalf("payment row missing: %v", err)
	}
	if p.Status != StatusCreated || p.UserID != "user-1" || p.AmountCents != 999 {
		t.Fatalf("unexpected payment row: %+v", p)
	}
}

func TestVerifyStripeFlipsPremium(t *testing.T) {
	svc, repo, userRepo := newService(
		stubStripe{result: ProviderResult{Succeeded: true, OwnerID: "user-1"}},
		stubPayPal{},
	)
	seed(t, repo, ProviderStripe, "pi_1", "user-1")

	status, err := svc.VerifyStripe(context.Background(), "user-1", "pi_1")
	if err != nil {
		t.Fatalf("VerifyStripe: %v", err)
	}
	if !status.Premium {
		t.Fatal("expected premium=true")
	}

	u, err := userRepo.GetByID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("user row: %v", err)
	}
	if !u.Premium || u.PremiumSince == nil {
		t.Fatalf("premium flag not persisted: %+v", u)
	}
	p, _ := repo.GetByProviderRef(context.Background(), ProviderStripe, "pi_1")
	if p.Status != StatusVerified {
		t.Fatalf("expected verified row, got %q", p.Status)
	}
}

func TestVerifyStripeOwnerMismatchKeepsPremiumOff(t *testing.T) {
	svc, repo, userRepo := newService(
		stubStripe{result: ProviderResult{Succeeded: true, OwnerID: "user-2"}},
		stubPayPal{},
	)
	seed(t, repo, ProviderStripe, "pi_1", "user-2")

	_, err := svc.VerifyStripe(context.Background(), "user-1", "pi_1")
	if !errors.Is(err, ErrNotVerified) {
		t.Fatalf("expected ErrNotVerified, got %v", err)
	}

	if _, err := userRepo.GetByID(context.Background(), "user-1"); !errors.Is(err, users.ErrNotFound) {
		t.Fatal("caller must not gain premium on mismatch")
	}
	p, _ := repo.GetByProviderRef(context.Background(), ProviderStripe, "pi_1")
	if p.Status != StatusFailed {
		t.Fatalf("expected failed row, got %q", p.Status)
	}
}

func TestVerifyStripeUnsuccessfulPayment(t *testing.T) {
	svc, repo, _ := newService(
		stubStripe{result: ProviderResult{Succeeded: false, OwnerID: "user-1"}},
		stubPayPal{},
	)
	seed(t, repo, ProviderStripe, "pi_1", "user-1")

	_, err := svc.VerifyStripe(context.Background(), "user-1", "pi_1")
	if !errors.Is(err, ErrNotVerified) {
		t.Fatalf("expected ErrNotVerified, got %v", err)
	}
}

func TestPayPalCaptureFlipsPremium(t *testing.T) {
	svc, repo, userRepo := newService(
		stubStripe{},
		stubPayPal{result: ProviderResult{Succeeded: true, OwnerID: "user-1"}},
	)
	seed(t, repo, ProviderPayPal, "order-1", "user-1")

	status, err := svc.CapturePayPal(context.Background(), "user-1", "order-1")
	if err != nil {
		t.Fatalf("CapturePayPal: %v", err)
	}
	if !status.Premium {
		t.Fatal("expected premium=true")
	}
	u, _ := userRepo.GetByID(context.Background(), "user-1")
	if !u.Premium {
		t.Fatal("premium flag not persisted")
	}
}

func TestCreatePayPalOrderUsesConfiguredPrice(t *testing.T) {
	svc, repo, _ := newService(stubStripe{}, stubPayPal{orderID: "order-9"})

	order, err := svc.CreatePayPalOrder(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("CreatePayPalOrder: %v", err)
	}
	if order.OrderID != "order-9" || order.ApproveURL == "" {
		t.Fatalf("unexpected order: %+v", order)
	}
	p, err := repo.GetByProviderRef(context.Background(), ProviderPayPal, "order-9")
	if err != nil {
		t.Fatalf("payment row missing: %v", err)
	}
	if p.AmountCents != 999 || p.Currency != "usd" {
		t.Fatalf("unexpected price on row: %+v", p)
	}
}

func TestDisabledGateway(t *testing.T) {
	svc, _, _ := newService(DisabledStripe{}, DisabledPayPal{})

	_, err := svc.CreateStripeIntent(context.Background(), "user-1", contract.StripeIntentInput{})
	if !errors.Is(err, ErrGatewayDisabled) {
		t.Fatalf("expected ErrGatewayDisabled, got %v", err)
	}
	_, err = svc.CreatePayPalOrder(context.Background(), "user-1")
	if !errors.Is(err, ErrGatewayDisabled) {
		t.Fatalf("expected ErrGatewayDisabled, got %v", err)
	}
}

func TestCentsToDecimal(t *testing.T) {
	cases := map[int64]string{
		999:   "9.99",
		100:   "1.00",
		1050:  "10.50",
		5:     "0.05",
		12000: "120.00",
	}
	for cents, want := range cases {
		if got := centsToDecimal(cents); got != want {
			t.Fatalf("centsToDecimal(%d) = %q, want %q", cents, got, want)
		}
	}
}

func seed(t *testing.T, repo Repo, provider, ref, userID string) {
	t.Helper()
	err := repo.Create(context.Background(), Payment{
		ID:          "pay-" + ref,
		UserID:      userID,
		Provider:    provider,
		ProviderRef: ref,
		AmountCents: 999,
		Currency:    "usd",
		Status:      StatusCreated,
	})
	if err != nil {
		t.Fatalf("seed payment: %v", err)
	}
}
