package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/reviewlens/reviewlens/internal/config"
	"github.com/reviewlens/reviewlens/pkg/reviewlens"
)

func testServer(t *testing.T, engine *reviewlens.Summarizer) *Server {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := config.Default().Server
	return New(cfg, engine, log)
}

func postJSON(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/summarize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("error body is not JSON: %v: %s", err, rec.Body.String())
	}
	return payload.Error
}

func TestHealthz(t *testing.T) {
	srv := testServer(t, reviewlens.New(reviewlens.Options{}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["status"] != "ok" {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestSummarizeOK(t *testing.T) {
	srv := testServer(t, reviewlens.New(reviewlens.Options{}))

	rec := postJSON(t, srv.Handler(), `{"reviews": [
		{"text": "Excellent quality and amazing design, I love it!", "rating": 5},
		{"text": "Terrible, broken, waste of money.", "rating": 1}
	]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("missing X-Request-Id header")
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("unexpected content type %q", ct)
	}

	var summary map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, field := range []string{"overall_score", "total_reviews", "executive_summary"} {
		if _, ok := summary[field]; !ok {
			t.Errorf("missing field %q in response", field)
		}
	}

	// The executive summary carries literal <b> tags; they must not be
	// escaped to \u003cb\u003e on the wire.
	if strings.Contains(rec.Body.String(), `\u003c`) {
		t.Errorf("response should not HTML-escape markup:\n%s", rec.Body.String())
	}
}

func TestSummarizeMissingReviewsKey(t *testing.T) {
	srv := testServer(t, reviewlens.New(reviewlens.Options{}))

	for _, body := range []string{``, `{}`, `not json`, `{"other": 1}`} {
		rec := postJSON(t, srv.Handler(), body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status %d, want 400", body, rec.Code)
			continue
		}
		if got := decodeError(t, rec); got != "No reviews data provided" {
			t.Errorf("body %q: error %q", body, got)
		}
	}
}

func TestSummarizeNotAList(t *testing.T) {
	srv := testServer(t, reviewlens.New(reviewlens.Options{}))

	for _, body := range []string{
		`{"reviews": "text"}`,
		`{"reviews": {"text": "hi"}}`,
		`{"reviews": 42}`,
		`{"reviews": []}`,
	} {
		rec := postJSON(t, srv.Handler(), body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status %d, want 400", body, rec.Code)
			continue
		}
		if got := decodeError(t, rec); got != "Reviews must be a non-empty list" {
			t.Errorf("body %q: error %q", body, got)
		}
	}
}

func TestSummarizeNilEngine(t *testing.T) {
	srv := testServer(t, nil)

	rec := postJSON(t, srv.Handler(), `{"reviews": [{"text": "fine", "rating": 4}]}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", rec.Code)
	}
	if got := decodeError(t, rec); got != "Summarizer failed to initialize." {
		t.Errorf("error %q", got)
	}
}

func TestRequestIDsUnique(t *testing.T) {
	srv := testServer(t, reviewlens.New(reviewlens.Options{}))

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		id := rec.Header().Get("X-Request-Id")
		if id == "" {
			t.Fatal("missing X-Request-Id")
		}
		if seen[id] {
			t.Fatalf("duplicate request id %q", id)
		}
		seen[id] = true
	}
}
