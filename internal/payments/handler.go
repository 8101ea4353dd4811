package payments

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerforge-backend/internal/contract"
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

func (h *Handler) CreateStripeIntent(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req contract.StripeIntentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "", "Invalid request body")
		return
	}
	if err := h.Ops.MustGet(contract.OpStripeCreateIntent).Input(req); err != nil {
		respond.FromValidation(c, err)
		return
	}

	intent, err := h.Svc.CreateStripeIntent(c.Request.Context(), userID, req)
	if err != nil {
		h.providerError(c, err, "Failed to create payment intent")
		return
	}
	respond.OK(c, intent)
}

func (h *Handler) VerifyStripe(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req contract.StripeVerifyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "", "Invalid request body")
		return
	}
	if err := h.Ops.MustGet(contract.OpStripeVerify).Input(req); err != nil {
		respond.FromValidation(c, err)
		return
	}

	status, err := h.Svc.VerifyStripe(c.Request.Context(), userID, req.PaymentIntentID)
	if err != nil {
		if errors.Is(err, ErrNotVerified) {
			respond.Validation(c, "", "Payment not successful or user mismatch")
			return
		}
		h.providerError(c, err, "Failed to verify payment")
		return
	}
	respond.OK(c, status)
}

func (h *Handler) CreatePayPalOrder(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	order, err := h.Svc.CreatePayPalOrder(c.Request.Context(), userID)
	if err != nil {
		h.providerError(c, err, "Failed to create order")
		return
	}
	respond.OK(c, order)
}

func (h *Handler) CapturePayPalOrder(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req contract.PayPalCaptureInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "", "Invalid request body")
		return
	}
	if err := h.Ops.MustGet(contract.OpPayPalCaptureOrder).Input(req); err != nil {
		respond.FromValidation(c, err)
		return
	}

	status, err := h.Svc.CapturePayPal(c.Request.Context(), userID, req.OrderID)
	if err != nil {
		if errors.Is(err, ErrNotVerified) {
			respond.Validation(c, "", "Payment not successful or user mismatch")
			return
		}
		h.providerError(c, err, "Failed to capture order")
		return
	}
	respond.OK(c, status)
}

// providerError distinguishes a missing configuration from an upstream
// provider failure.
func (h *Handler) providerError(c *gin.Context, err error, message string) {
	if errors.Is(err, ErrGatewayDisabled) {
		respond.Error(c, http.StatusInternalServerError, "Payment provider not configured", "")
		return
	}
	respond.Error(c, http.StatusBadGateway, message, err.Error())
}
