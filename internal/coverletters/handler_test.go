package coverletters

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/generate"
	"careerforge-backend/internal/llm"
)

func newTestRouter(repo Repo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := &Service{Repo: repo, Gen: generate.NewAdapter(llm.Placeholder{})}
	ops := contract.Default()
	handler := NewHandler(svc, ops)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Next()
	})
	for name, h := range map[string]gin.HandlerFunc{
		contract.OpCoverLettersList:     handler.List,
		contract.OpCoverLettersGet:      handler.Get,
		contract.OpCoverLettersCreate:   handler.Create,
		contract.OpCoverLettersUpdate:   handler.Update,
		contract.OpCoverLettersDelete:   handler.Delete,
		contract.OpCoverLettersGenerate: handler.Generate,
	} {
		op := ops.MustGet(name)
		router.Handle(op.Method, op.Path, h)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCoverLetterRoundTrip(t *testing.T) {
	router := newTestRouter(NewMemoryRepo())

	resp := doJSON(t, router, http.MethodPost, "/api/cover-letters", contract.DocumentInput{
		Title:   "Application to Acme",
		Content: "<p>Dear hiring manager</p>",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created contract.CoverLetter
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.UserID != "user-1" {
		t.Fatalf("expected owner user-1, got %q", created.UserID)
	}

	list := doJSON(t, router, http.MethodGet, "/api/cover-letters", nil)
	if list.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", list.Code)
	}
	var items []contract.CoverLetter
	if err := json.Unmarshal(list.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 cover letter, got %d", len(items))
	}

	content := "<p>Updated</p>"
	upd := doJSON(t, router, http.MethodPut, "/api/cover-letters/"+created.ID, contract.DocumentUpdate{Content: &content})
	if upd.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", upd.Code)
	}
	var updated contract.CoverLetter
	if err := json.Unmarshal(upd.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.Content != content {
		t.Fatalf("expected updated content, got %q", updated.Content)
	}
	if updated.Title != created.Title {
		t.Fatalf("partial update must keep title, got %q", updated.Title)
	}

	del := doJSON(t, router, http.MethodDelete, "/api/cover-letters/"+created.ID, nil)
	if del.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", del.Code)
	}
	get := doJSON(t, router, http.MethodGet, "/api/cover-letters/"+created.ID, nil)
	if get.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 after delete, got %d", get.Code)
	}
}

func TestListIsEmptySliceNotNull(t *testing.T) {
	router := newTestRouter(NewMemoryRepo())

	resp := doJSON(t, router, http.MethodGet, "/api/cover-letters", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != "[]" {
		t.Fatalf("expected empty JSON array, got %s", got)
	}
}

func TestGenerateValidationFailureIs400(t *testing.T) {
	router := newTestRouter(NewMemoryRepo())

	resp := doJSON(t, router, http.MethodPost, "/api/cover-letters/generate", map[string]string{
		"fullName": "Ada",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}
