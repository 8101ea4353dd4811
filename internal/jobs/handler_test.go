package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/generate"
	"careerforge-backend/internal/llm"
)

type stubFetcher struct {
	text string
	err  error
}

func (s stubFetcher) PageText(context.Context, string) (string, error) {
	return s.text, s.err
}

type stubLLM struct {
	jsonOut string
	err     error
}

func (s stubLLM) GenerateText(context.Context, string) (string, error) {
	return "", s.err
}

func (s stubLLM) GenerateJSON(context.Context, string) ([]byte, error) {
	return []byte(s.jsonOut), s.err
}

func newTestRouter(fetch Fetcher, client llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ops := contract.Default()
	handler := NewHandler(NewService(fetch, generate.NewAdapter(client)), ops)

	router := gin.New()
	op := ops.MustGet(contract.OpJobsFetch)
	router.Handle(op.Method, op.Path, handler.Fetch)
	return router
}

func postFetch(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/jobs/fetch", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestFetchExtractsPosting(t *testing.T) {
	router := newTestRouter(
		stubFetcher{text: "Acme is hiring a Senior Go Engineer in Berlin."},
		stubLLM{jsonOut: `{"companyName":"Acme","roleTitle":"Senior Go Engineer","location":"Berlin","description":"Build services.","techStack":["Go"],"salaryRange":""}`},
	)

	resp := postFetch(t, router, contract.JobFetchInput{URL: "https://jobs.example.com/123"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var posting contract.JobPosting
	if err := json.Unmarshal(resp.Body.Bytes(), &posting); err != nil {
		t.Fatalf("decode posting: %v", err)
	}
	if posting.RoleTitle != "Senior Go Engineer" || posting.CompanyName != "Acme" {
		t.Fatalf("unexpected posting: %+v", posting)
	}
}

func TestFetchInvalidURLIs400(t *testing.T) {
	router := newTestRouter(stubFetcher{}, stubLLM{})

	resp := postFetch(t, router, map[string]string{"url": "not-a-url"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestFetchUpstreamFailureIs502(t *testing.T) {
	router := newTestRouter(
		stubFetcher{err: &FetchError{URL: "https://jobs.example.com/x", Message: "HTTP status 500"}},
		stubLLM{},
	)

	resp := postFetch(t, router, contract.JobFetchInput{URL: "https://jobs.example.com/x"})
	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", resp.Code)
	}
}

func TestFetchMalformedModelOutputIs502(t *testing.T) {
	router := newTestRouter(
		stubFetcher{text: "some page text"},
		stubLLM{jsonOut: "no json here"},
	)

	resp := postFetch(t, router, contract.JobFetchInput{URL: "https://jobs.example.com/x"})
	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502 on unusable model output, got %d", resp.Code)
	}
}
