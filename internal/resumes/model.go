package resumes

import (
	"time"

	"careerforge-backend/internal/contract"
)

// Resume is a persisted resume owned by a user.
type Resume struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Payload converts to the wire representation.
func (r Resume) Payload() contract.Resume {
	return contract.Resume{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
