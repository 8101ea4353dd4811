package jobs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPageTextStripsBoilerplate(t *testing.T) {
	page := `<html><body>
<nav>Home | Jobs | About</nav>
<script>track()</script>
<main class="job-description">
  <h1>Senior Go Engineer</h1>
  <p>Build backend services in Go and Postgres.</p>
</main>
<footer>© Acme</footer>
</body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(srv.Close)

	f := NewHTTPFetcher()
	text, err := f.PageText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("PageText: %v", err)
	}
	if !strings.Contains(text, "Senior Go Engineer") {
		t.Fatalf("expected role title in text, got %q", text)
	}
	if strings.Contains(text, "track()") || strings.Contains(text, "Home | Jobs") {
		t.Fatalf("boilerplate not stripped: %q", text)
	}
}

func TestPageTextNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	f := NewHTTPFetcher()
	_, err := f.PageText(context.Background(), srv.URL)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if !strings.Contains(fe.Message, "403") {
		t.Fatalf("expected status in message, got %q", fe.Message)
	}
}

func TestPageTextInvalidURL(t *testing.T) {
	f := NewHTTPFetcher()
	_, err := f.PageText(context.Background(), "not a url")
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
}

func TestPageTextTruncatesLongPages(t *testing.T) {
	long := "<html><body><main>" + strings.Repeat("job details ", 5000) + "</main></body></html>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(long))
	}))
	t.Cleanup(srv.Close)

	f := NewHTTPFetcher()
	text, err := f.PageText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("PageText: %v", err)
	}
	if len(text) > maxPageText {
		t.Fatalf("expected text capped at %d, got %d", maxPageText, len(text))
	}
}
