package payments

import "time"

// Payment statuses. A row starts as created and moves to verified or failed
// exactly once.
const (
	StatusCreated  = "created"
	StatusVerified = "verified"
	StatusFailed   = "failed"
)

// Providers.
const (
	ProviderStripe = "stripe"
	ProviderPayPal = "paypal"
)

// Payment is one provider-side payment attempt. ProviderRef is the provider's
// identifier (Stripe intent id, PayPal order id) and is unique per provider.
type Payment struct {
	ID          string
	UserID      string
	Provider    string
	ProviderRef string
	AmountCents int64
	Currency    string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
