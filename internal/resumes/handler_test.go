package resumes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/generate"
	"careerforge-backend/internal/llm"
)

type fakeLLM struct {
	text    string
	jsonOut string
	err     error
}

func (f fakeLLM) GenerateText(context.Context, string) (string, error) {
	return f.text, f.err
}

func (f fakeLLM) GenerateJSON(context.Context, string) ([]byte, error) {
	return []byte(f.jsonOut), f.err
}

func newTestRouter(repo Repo, client llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := &Service{Repo: repo, Gen: generate.NewAdapter(client)}
	ops := contract.Default()
	handler := NewHandler(svc, ops)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Next()
	})
	for name, h := range map[string]gin.HandlerFunc{
		contract.OpResumesList:     handler.List,
		contract.OpResumesGet:      handler.Get,
		contract.OpResumesCreate:   handler.Create,
		contract.OpResumesUpdate:   handler.Update,
		contract.OpResumesDelete:   handler.Delete,
		contract.OpResumesGenerate: handler.Generate,
		contract.OpResumesOptimize: handler.Optimize,
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

func TestCreateStampsOwner(t *testing.T) {
	repo := NewMemoryRepo()
	router := newTestRouter(repo, llm.Placeholder{})

	resp := doJSON(t, router, http.MethodPost, "/api/resumes", contract.DocumentInput{
		Title:   "Backend engineer",
		Content: "<p>resume body</p>",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created contract.Resume
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.UserID != "user-1" {
		t.Fatalf("expected owner user-1, got %q", created.UserID)
	}

	getResp := doJSON(t, router, http.MethodGet, "/api/resumes/"+created.ID, nil)
	if getResp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", getResp.Code)
	}
}

func TestCreateValidationNamesField(t *testing.T) {
	router := newTestRouter(NewMemoryRepo(), llm.Placeholder{})

	resp := doJSON(t, router, http.MethodPost, "/api/resumes", map[string]string{"content": "body"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var body struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Field != "title" {
		t.Fatalf("expected offending field title, got %q", body.Field)
	}
}

func TestGetNotOwnedIs404(t *testing.T) {
	repo := NewMemoryRepo()
	other := Resume{
		ID:        "res-2",
		UserID:    "user-2",
		Title:     "Someone else's",
		Content:   "x",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), other); err != nil {
		t.Fatalf("seed resume: %v", err)
	}

	router := newTestRouter(repo, llm.Placeholder{})
	resp := doJSON(t, router, http.MethodGet, "/api/resumes/res-2", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for cross-user read, got %d", resp.Code)
	}
}

func TestUpdateRefreshesUpdatedAt(t *testing.T) {
	repo := NewMemoryRepo()
	router := newTestRouter(repo, llm.Placeholder{})

	resp := doJSON(t, router, http.MethodPost, "/api/resumes", contract.DocumentInput{Title: "v1", Content: "c"})
	var created contract.Resume
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	title := "v2"
	upd := doJSON(t, router, http.MethodPut, "/api/resumes/"+created.ID, contract.DocumentUpdate{Title: &title})
	if upd.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", upd.Code, upd.Body.String())
	}

	var updated contract.Resume
	if err := json.Unmarshal(upd.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.Title != "v2" {
		t.Fatalf("expected title v2, got %q", updated.Title)
	}
	if updated.Content != "c" {
		t.Fatalf("partial update must keep content, got %q", updated.Content)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updatedAt must be strictly greater: %v vs %v", updated.UpdatedAt, created.UpdatedAt)
	}
}

func TestDeleteThen404(t *testing.T) {
	repo := NewMemoryRepo()
	router := newTestRouter(repo, llm.Placeholder{})

	resp := doJSON(t, router, http.MethodPost, "/api/resumes", contract.DocumentInput{Title: "t", Content: "c"})
	var created contract.Resume
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	del := doJSON(t, router, http.MethodDelete, "/api/resumes/"+created.ID, nil)
	if del.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", del.Code)
	}

	again := doJSON(t, router, http.MethodDelete, "/api/resumes/"+created.ID, nil)
	if again.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 on second delete, got %d", again.Code)
	}
}

func TestGenerateWithoutProviderIs500(t *testing.T) {
	router := newTestRouter(NewMemoryRepo(), llm.Placeholder{})

	resp := doJSON(t, router, http.MethodPost, "/api/resumes/generate", contract.GenerateResumeInput{
		FullName: "Ada Lovelace",
		JobTitle: "Engineer",
		Skills:   []string{"Go"},
	})
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

func TestOptimizeDegradesOnMalformedModelOutput(t *testing.T) {
	router := newTestRouter(NewMemoryRepo(), fakeLLM{jsonOut: "not json at all"})

	resp := doJSON(t, router, http.MethodPost, "/api/resumes/optimize", contract.OptimizeResumeInput{
		Content:        "resume",
		JobDescription: "job",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected degraded 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var analysis contract.ResumeAnalysis
	if err := json.Unmarshal(resp.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("decode analysis: %v", err)
	}
	if analysis.MatchScore != 50 {
		t.Fatalf("expected canned score 50, got %d", analysis.MatchScore)
	}
	if len(analysis.Suggestions) == 0 {
		t.Fatal("degraded analysis must carry suggestions")
	}
}

func TestDeleteErrorsPropagate(t *testing.T) {
	repo := &failingRepo{err: errors.New("boom")}
	router := newTestRouter(repo, llm.Placeholder{})

	resp := doJSON(t, router, http.MethodDelete, "/api/resumes/any", nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

type failingRepo struct{ err error }

func (r *failingRepo) Create(context.Context, Resume) error { return r.err }
func (r *failingRepo) GetByID(context.Context, string, string) (Resume, error) {
	return Resume{}, r.err
}
func (r *failingRepo) ListByUser(context.Context, string) ([]Resume, error) { return nil, r.err }
func (r *failingRepo) Update(context.Context, string, string, *string, *string) (Resume, error) {
	return Resume{}, r.err
}
func (r *failingRepo) Delete(context.Context, string, string) error { return r.err }
