package coverletters

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/llm"
	"careerforge-backend/internal/shared/server/middleware"
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

func (h *Handler) List(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	items, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to list cover letters", err.Error())
		return
	}

	out := make([]contract.CoverLetter, 0, len(items))
	for _, l := range items {
		out = append(out, l.Payload())
	}
	respond.OK(c, out)
}

func (h *Handler) Get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	l, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.NotFound(c, "Cover letter not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to fetch cover letter", err.Error())
		return
	}
	respond.OK(c, l.Payload())
}

func (h *Handler) Create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req contract.DocumentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "", "Invalid request body")
		return
	}
	if err := h.Ops.MustGet(contract.OpCoverLettersCreate).Input(req); err != nil {
		respond.FromValidation(c, err)
		return
	}

	l, err := h.Svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to create cover letter", err.Error())
		return
	}
	respond.Created(c, l.Payload())
}

func (h *Handler) Update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req contract.DocumentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "", "Invalid request body")
		return
	}
	if err := h.Ops.MustGet(contract.OpCoverLettersUpdate).Input(req); err != nil {
		respond.FromValidation(c, err)
		return
	}

	l, err := h.Svc.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.NotFound(c, "Cover letter not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to update cover letter", err.Error())
		return
	}
	respond.OK(c, l.Payload())
}

func (h *Handler) Delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.NotFound(c, "Cover letter not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to delete cover letter", err.Error())
		return
	}
	respond.NoContent(c)
}

func (h *Handler) Generate(c *gin.Context) {
	var req contract.GenerateCoverLetterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "", "Invalid request body")
		return
	}
	if err := h.Ops.MustGet(contract.OpCoverLettersGenerate).Input(req); err != nil {
		respond.FromValidation(c, err)
		return
	}

	doc, err := h.Svc.Generate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			respond.Error(c, http.StatusInternalServerError, "AI provider not configured", "")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to generate cover letter", err.Error())
		return
	}
	respond.OK(c, doc)
}
