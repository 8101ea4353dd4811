package jobs

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

// Fetch extracts structured job data from a posting URL.
func (h *Handler) Fetch(c *gin.Context) {
	var req contract.JobFetchInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "", "Invalid request body")
		return
	}
	if err := h.Ops.MustGet(contract.OpJobsFetch).Input(req); err != nil {
		respond.FromValidation(c, err)
		return
	}

	posting, err := h.Svc.Extract(c.Request.Context(), req)
	if err != nil {
		var fe *FetchError
		switch {
		case errors.As(err, &fe):
			respond.Error(c, http.StatusBadGateway, "Failed to fetch job posting", fe.Message)
		case errors.Is(err, llm.ErrMalformed):
			respond.Error(c, http.StatusBadGateway, "Failed to extract job posting", "model returned unusable output")
		case errors.Is(err, llm.ErrNotConfigured):
			respond.Error(c, http.StatusInternalServerError, "AI provider not configured", "")
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to extract job posting", err.Error())
		}
		return
	}
	respond.OK(c, posting)
}
