package coverletters

import (
	"time"

	"careerforge-backend/internal/contract"
)

// CoverLetter is a persisted cover letter owned by a user.
type CoverLetter struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l CoverLetter) Payload() contract.CoverLetter {
	return contract.CoverLetter{
		ID:        l.ID,
		UserID:    l.UserID,
		Title:     l.Title,
		Content:   l.Content,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
