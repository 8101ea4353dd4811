package users

import "time"

// User is the server-side record for an identity-provider user. Premium is
// flipped only by a verified payment.
type User struct {
	ID           string
	Email        string
	Premium      bool
	PremiumSince *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
