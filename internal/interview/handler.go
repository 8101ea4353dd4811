package interview

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

func (h *Handler) Generate(c *gin.Context) {
	var req contract.InterviewGenerateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "", "Invalid request body")
		return
	}
	if err := h.Ops.MustGet(contract.OpInterviewGenerate).Input(req); err != nil {
		respond.FromValidation(c, err)
		return
	}

	out, err := h.Svc.Questions(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			respond.Error(c, http.StatusInternalServerError, "AI provider not configured", "")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to generate questions", err.Error())
		return
	}
	respond.OK(c, out)
}

func (h *Handler) Evaluate(c *gin.Context) {
	var req contract.InterviewEvaluateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "", "Invalid request body")
		return
	}
	if err := h.Ops.MustGet(contract.OpInterviewEvaluate).Input(req); err != nil {
		respond.FromValidation(c, err)
		return
	}

	out, err := h.Svc.Evaluate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			respond.Error(c, http.StatusInternalServerError, "AI provider not configured", "")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to evaluate answer", err.Error())
		return
	}
	respond.OK(c, out)
}
