package linkedin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/llm"
	"careerforge-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
	Ops *contract.Registry
}

func NewHandler(svc *Service, ops *contract.Registry) *Handler {
	return &Handler{Svc: svc, Ops: ops}
}

func (h *Handler) Optimize(c *gin.Context) {
	var req contract.LinkedInOptimizeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "", "Invalid request body")
		return
	}
	if err := h.Ops.MustGet(contract.OpLinkedInOptimize).Input(req); err != nil {
		respond.FromValidation(c, err)
		return
	}

	out, err := h.Svc.Optimize(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			respond.Error(c, http.StatusInternalServerError, "AI provider not configured", "")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to optimize profile", err.Error())
		return
	}
	respond.OK(c, out)
}
