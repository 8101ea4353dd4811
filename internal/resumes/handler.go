package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/llm"
	"careerforge-backend/internal/shared/server/middleware"
	"careerforge-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service, re-validating every input
// against the same contract entries the client uses.
type Handler struct {
	Svc *Service
	Ops *contract.Registry
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, ops *contract.Registry) *Handler {
	return &Handler{Svc: svc, Ops: ops}
}

func (h *Handler) List(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	items, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to list resumes", err.Error())
		return
	}

	out := make([]contract.Resume, 0, len(items))
	for _, res := range items {
		out = append(out, res.Payload())
	}
	respond.OK(c, out)
}

func (h *Handler) Get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	res, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.NotFound(c, "Resume not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to fetch resume", err.Error())
		return
	}
	respond.OK(c, res.Payload())
}

func (h *Handler) Create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req contract.DocumentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "", "Invalid request body")
		return
	}
	if err := h.Ops.MustGet(contract.OpResumesCreate).Input(req); err != nil {
		respond.FromValidation(c, err)
		return
	}

	res, err := h.Svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to create resume", err.Error())
		return
	}
	respond.Created(c, res.Payload())
}

func (h *Handler) Update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req contract.DocumentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "", "Invalid request body")
		return
	}
	if err := h.Ops.MustGet(contract.OpResumesUpdate).Input(req); err != nil {
		respond.FromValidation(c, err)
		return
	}

	res, err := h.Svc.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.NotFound(c, "Resume not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to update resume", err.Error())
		return
	}
	respond.OK(c, res.Payload())
}

func (h *Handler) Delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.NotFound(c, "Resume not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to delete resume", err.Error())
		return
	}
	respond.NoContent(c)
}

func (h *Handler) Generate(c *gin.Context) {
	var req contract.GenerateResumeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "", "Invalid request body")
		return
	}
	if err := h.Ops.MustGet(contract.OpResumesGenerate).Input(req); err != nil {
		respond.FromValidation(c, err)
		return
	}

	doc, err := h.Svc.Generate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			respond.Error(c, http.StatusInternalServerError, "AI provider not configured", "")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to generate resume", err.Error())
		return
	}
	respond.OK(c, doc)
}

func (h *Handler) Optimize(c *gin.Context) {
	var req contract.OptimizeResumeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "", "Invalid request body")
		return
	}
	if err := h.Ops.MustGet(contract.OpResumesOptimize).Input(req); err != nil {
		respond.FromValidation(c, err)
		return
	}

	analysis, err := h.Svc.Optimize(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			respond.Error(c, http.StatusInternalServerError, "AI provider not configured", "")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to optimize resume", err.Error())
		return
	}
	respond.OK(c, analysis)
}
