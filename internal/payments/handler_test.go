package payments

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/users"
)

func newTestRouter(stripe StripeGateway, pp PayPalGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := NewMemoryRepo()
	svc := &Service{
		Repo:        repo,
		Stripe:      stripe,
		PayPal:      pp,
		Users:       users.NewMemoryRepo(),
		AmountCents: 999,
		Currency:    "usd",
	}
	ops := contract.Default()
	handler := NewHandler(svc, ops)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Next()
	})
	for name, h := range map[string]gin.HandlerFunc{
		contract.OpStripeCreateIntent: handler.CreateStripeIntent,
		contract.OpStripeVerify:       handler.VerifyStripe,
		contract.OpPayPalCreateOrder:  handler.CreatePayPalOrder,
		contract.OpPayPalCaptureOrder: handler.CapturePayPalOrder,
	} {
		op := ops.MustGet(name)
		router.Handle(op.Method, op.Path, h)
	}
	return router
}

func post(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestVerifyEndpointRejectsMismatch(t *testing.T) {
	router := newTestRouter(
		stubStripe{result: ProviderResult{Succeeded: true, OwnerID: "someone-else"}},
		stubPayPal{},
	)

	resp := post(t, router, "/api/payments/stripe/verify", contract.StripeVerifyInput{PaymentIntentID: "pi_1"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Message != "Payment not successful or user mismatch" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestCreateIntentEndpoint(t *testing.T) {
	router := newTestRouter(stubStripe{intentID: "pi_2"}, stubPayPal{})

	resp := post(t, router, "/api/payments/stripe/create-intent", contract.StripeIntentInput{})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var intent contract.StripeIntent
	if err := json.Unmarshal(resp.Body.Bytes(), &intent); err != nil {
		t.Fatalf("decode intent: %v", err)
	}
	if intent.PaymentIntentID != "pi_2" || intent.ClientSecret == "" {
		t.Fatalf("unexpected intent: %+v", intent)
	}
}

func TestDisabledProviderIs500(t *testing.T) {
	router := newTestRouter(DisabledStripe{}, DisabledPayPal{})

	resp := post(t, router, "/api/payments/paypal/create-order", nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Message != "Payment provider not configured" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}
