package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerforge-backend/internal/shared/server/middleware"
	"careerforge-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// Me returns the caller's profile, creating the record on first request.
func (h *Handler) Me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	email := middleware.UserEmailFromContext(c)

	profile, err := h.Svc.Profile(c.Request.Context(), userID, email)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to load profile", err.Error())
		return
	}
	respond.OK(c, profile)
}
