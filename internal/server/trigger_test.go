package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/worker"
)

type stubRunner struct {
	calls  int
	params worker.RunParams
	report *worker.RunReport
	err    error
}

func (s *stubRunner) Run(_ context.Context, params worker.RunParams) (*worker.RunReport, error) {
	s.calls++
	s.params = params
	return s.report, s.err
}

func TestTriggerRejectsNonPost(t *testing.T) {
	runner := &stubRunner{report: &worker.RunReport{}}
	h := NewTriggerHandler(runner, "s3cret", nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/worker/render", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d", rec.Code)
	}
	if runner.calls != 0 {
		t.Error("runner invoked")
	}
}

func TestTriggerRejectsBadSecretBeforeClaim(t *testing.T) {
	runner := &stubRunner{report: &worker.RunReport{}}
	h := NewTriggerHandler(runner, "s3cret", nil)

	req := httptest.NewRequest(http.MethodPost, "/worker/render", nil)
	req.Header.Set("X-Worker-Secret", "wrong")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d", rec.Code)
	}
	if runner.calls != 0 {
		t.Error("unauthorized call reached the worker")
	}
}

func TestTriggerRejectsWhenNoSecretConfigured(t *testing.T) {
	runner := &stubRunner{report: &worker.RunReport{}}
	h := NewTriggerHandler(runner, "", nil)

	req := httptest.NewRequest(http.MethodPost, "/worker/render", nil)
	req.Header.Set("X-Worker-Secret", "")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, an empty configured secret must never authorize", rec.Code)
	}
}

func TestTriggerRunsAndReturnsReport(t *testing.T) {
	runner := &stubRunner{report: &worker.RunReport{Claimed: 2, DurationMs: 5}}
	h := NewTriggerHandler(runner, "s3cret", nil)

	req := httptest.NewRequest(http.MethodPost, "/worker/render?max=3&debug=1", nil)
	req.Header.Set("X-Worker-Secret", "s3cret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if runner.params.MaxJobs != 3 || !runner.params.Debug {
		t.Errorf("params = %+v", runner.params)
	}

	var got worker.RunReport
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Claimed != 2 {
		t.Errorf("Claimed = %d", got.Claimed)
	}
}

func TestTriggerSecretViaQueryParam(t *testing.T) {
	runner := &stubRunner{report: &worker.RunReport{}}
	h := NewTriggerHandler(runner, "s3cret", nil)

	req := httptest.NewRequest(http.MethodPost, "/worker/render?secret=s3cret", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestTriggerBadMaxParam(t *testing.T) {
	runner := &stubRunner{report: &worker.RunReport{}}
	h := NewTriggerHandler(runner, "s3cret", nil)

	for _, raw := range []string{"abc", "-1"} {
		req := httptest.NewRequest(http.MethodPost, "/worker/render?max="+raw, nil)
		req.Header.Set("X-Worker-Secret", "s3cret")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("max=%q: status = %d", raw, rec.Code)
		}
	}
	if runner.calls != 0 {
		t.Error("runner invoked with bad max")
	}
}

func TestTriggerRunFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("claim deadlock")}
	h := NewTriggerHandler(runner, "s3cret", nil)

	req := httptest.NewRequest(http.MethodPost, "/worker/render", nil)
	req.Header.Set("X-Worker-Secret", "s3cret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d", rec.Code)
	}
}
