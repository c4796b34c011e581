package investease

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRecommendPostsPayload(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"report_type":"full","recommendations":{}}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, 5*time.Second, 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	payload := json.RawMessage(`{"age":30,"risk_preference":"Medium"}`)
	raw, err := client.Recommend(context.Background(), payload)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/api/recommend" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected JSON content type, got %q", gotContentType)
	}
	if string(gotBody) != string(payload) {
		t.Fatalf("unexpected body %s", gotBody)
	}
	if !json.Valid(raw) {
		t.Fatalf("expected valid JSON response, got %s", raw)
	}
}

func TestCategoryReportPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"single_report":{}}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL+"/", 5*time.Second, 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := client.CategoryReport(context.Background(), "gold"); err != nil {
		t.Fatalf("CategoryReport: %v", err)
	}
	if gotPath != "/report/gold" {
		t.Fatalf("unexpected path %q", gotPath)
	}
}

func TestComparePlansQuery(t *testing.T) {
	var gotPath, gotRisk string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRisk = r.URL.Query().Get("risk_preference")
		_, _ = w.Write([]byte(`{"status":"success","plans":[]}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, 5*time.Second, 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := client.ComparePlans(context.Background(), "High"); err != nil {
		t.Fatalf("ComparePlans: %v", err)
	}
	if gotPath != "/api/compare" || gotRisk != "High" {
		t.Fatalf("unexpected request %q risk %q", gotPath, gotRisk)
	}
}

func TestNon2xxIsGenericStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"secret internals"}`, http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, 5*time.Second, 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.Recommend(context.Background(), json.RawMessage(`{}`))
	if err == nil {
		t.Fatalf("expected error for 500 response")
	}
	if !strings.Contains(err.Error(), "status 500") {
		t.Fatalf("expected status in error, got %v", err)
	}
	if strings.Contains(err.Error(), "secret internals") {
		t.Fatalf("error must not echo the response body: %v", err)
	}
}

func TestInvalidJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, 5*time.Second, 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := client.Recommend(context.Background(), json.RawMessage(`{}`)); err == nil {
		t.Fatalf("expected error for non-JSON body")
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient("   ", time.Second, 0); err == nil {
		t.Fatalf("expected error for empty base URL")
	}
}
