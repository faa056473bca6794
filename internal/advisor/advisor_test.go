package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"Takeoff/internal/calc/takeoff"
	"Takeoff/internal/logger"
)

type recordingEstimator struct {
	volumes []float64
	reply   Manpower
	errs    []error
}

func (r *recordingEstimator) Estimate(_ context.Context, v float64) (Manpower, error) {
	r.volumes = append(r.volumes, v)
	if len(r.errs) > 0 {
		err := r.errs[0]
		r.errs = r.errs[1:]
		return Manpower{}, err
	}
	return r.reply, nil
}

func TestFeedPassesOnlyVolume(t *testing.T) {
	est := &recordingEstimator{reply: Manpower{MinDays: 2, MaxDays: 3, MinWorkers: 4, MaxWorkers: 6}}
	v, m, err := Feed(context.Background(), est, 50, 40, 5)
	if err != nil {
		t.Fatal(err)
	}
	if v != 10000 {
		t.Fatalf("volume = %v, want 10000", v)
	}
	if len(est.volumes) != 1 || est.volumes[0] != 10000 {
		t.Fatalf("estimator saw %v", est.volumes)
	}
	if m.MaxWorkers != 6 {
		t.Fatalf("manpower = %+v", m)
	}
}

func TestFeedRejectsBadDimensions(t *testing.T) {
	est := &recordingEstimator{}
	_, _, err := Feed(context.Background(), est, 50, 0, 5)
	if !errors.Is(err, takeoff.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
	if len(est.volumes) != 0 {
		t.Fatal("estimator called for invalid dimensions")
	}
}

func TestFeedRejectsUnderflow(t *testing.T) {
	est := &recordingEstimator{}
	v, _, err := Feed(context.Background(), est, 1e-200, 1e-200, 1e-200)
	if !errors.Is(err, takeoff.ErrInvalidInput) || errors.Is(err, ErrEstimator) {
		t.Fatalf("err = %v, want invalid input", err)
	}
	if v != 0 || len(est.volumes) != 0 {
		t.Fatalf("volume %v, estimator saw %v", v, est.volumes)
	}
}

func TestFeedWrapsEstimatorFailure(t *testing.T) {
	offline := errors.New("advisor offline")
	est := &recordingEstimator{errs: []error{offline}}
	v, _, err := Feed(context.Background(), est, 10, 5, 2)
	if !errors.Is(err, ErrEstimator) || !errors.Is(err, offline) {
		t.Fatalf("err = %v", err)
	}
	if errors.Is(err, takeoff.ErrInvalidInput) {
		t.Fatal("estimator failure reported as invalid input")
	}
	if v != 100 {
		t.Fatalf("volume = %v, want 100", v)
	}
}

func TestFeedWithoutEstimator(t *testing.T) {
	v, m, err := Feed(context.Background(), nil, 10, 5, 2)
	if err != nil || v != 100 || m != (Manpower{}) {
		t.Fatalf("Feed = %v, %+v, %v", v, m, err)
	}
}

func TestWithRetry(t *testing.T) {
	est := &recordingEstimator{
		reply: Manpower{MinDays: 1, MaxDays: 1, MinWorkers: 1, MaxWorkers: 1},
		errs:  []error{errors.New("timeout"), errors.New("503")},
	}
	m, err := WithRetry(est, 2, time.Millisecond, time.Second).Estimate(context.Background(), 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(est.volumes) != 3 || m.MaxDays != 1 {
		t.Fatalf("calls = %d, manpower = %+v", len(est.volumes), m)
	}
}

func TestWithRetryGivesUp(t *testing.T) {
	est := &recordingEstimator{errs: []error{errors.New("a"), errors.New("b"), errors.New("c")}}
	if _, err := WithRetry(est, 1, time.Millisecond, 0).Estimate(context.Background(), 100); err == nil {
		t.Fatal("expected error")
	}
	if len(est.volumes) != 2 {
		t.Fatalf("calls = %d, want 2", len(est.volumes))
	}
}

func TestWithRetrySkipsBadReply(t *testing.T) {
	est := &recordingEstimator{errs: []error{ErrBadReply}}
	if _, err := WithRetry(est, 3, time.Millisecond, 0).Estimate(context.Background(), 100); !errors.Is(err, ErrBadReply) {
		t.Fatalf("err = %v", err)
	}
	if len(est.volumes) != 1 {
		t.Fatalf("bad reply retried %d times", len(est.volumes)-1)
	}
}

func TestParseReply(t *testing.T) {
	reply := "```json\n{\"min_days\": 3, \"max_days\": 5, \"min_workers\": 6, \"max_workers\": 8, \"notes\": \"clay\"}\n```"
	m, err := ParseReply(reply)
	if err != nil {
		t.Fatal(err)
	}
	if m.MinDays != 3 || m.MaxWorkers != 8 || m.Notes != "clay" {
		t.Fatalf("manpower = %+v", m)
	}

	if _, err := ParseReply("about a week"); !errors.Is(err, ErrBadReply) {
		t.Fatalf("err = %v", err)
	}
	if _, err := ParseReply(`{"min_days": 5, "max_days": 2}`); !errors.Is(err, ErrBadReply) {
		t.Fatalf("inverted range accepted: %v", err)
	}
}

func TestGPTEstimator(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.Header.Get("api-key") != "secret" {
			t.Errorf("api key header = %q", r.Header.Get("api-key"))
		}
		body, _ := io.ReadAll(r.Body)
		var p payload
		if err := json.Unmarshal(body, &p); err != nil {
			t.Errorf("payload: %v", err)
		}
		if len(p.Messages) != 2 || !strings.Contains(p.Messages[1].Content, "10000.00 cubic feet") {
			t.Errorf("unexpected messages %+v", p.Messages)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{
				"message": map[string]string{
					"role":    "assistant",
					"content": `{"min_days": 4, "max_days": 6, "min_workers": 5, "max_workers": 8}`,
				},
			}},
		})
	}))
	defer srv.Close()

	g := NewGPTEstimator(srv.URL, "secret", logger.Nop(), WithModel("gpt-4o-mini"))
	m, err := g.Estimate(context.Background(), 10000)
	if err != nil {
		t.Fatal(err)
	}
	if m.MinDays != 4 || m.MaxWorkers != 8 {
		t.Fatalf("manpower = %+v", m)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("calls = %d", calls)
	}
}

func TestGPTEstimatorHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewGPTEstimator(srv.URL, "", logger.Nop()).Estimate(context.Background(), 1)
	if err == nil || errors.Is(err, ErrBadReply) {
		t.Fatalf("err = %v, want retryable API error", err)
	}
}

func TestEarthworkHandler(t *testing.T) {
	h := &Handler{
		Est: &recordingEstimator{errs: []error{errors.New("advisor offline")}},
		Log: logger.Nop(),
	}
	req := httptest.NewRequest(http.MethodPost, "/api/earthwork/estimate",
		strings.NewReader(`{"length_ft": 50, "width_ft": 40, "depth_ft": 5}`))
	rec := httptest.NewRecorder()
	h.Earthwork(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var res EarthworkResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.VolumeCft != 10000 || res.Manpower != nil || res.AdvisorError == "" {
		t.Fatalf("response = %+v", res)
	}
}

func TestEarthworkHandlerInvalid(t *testing.T) {
	h := &Handler{Log: logger.Nop()}
	req := httptest.NewRequest(http.MethodPost, "/api/earthwork/estimate",
		strings.NewReader(`{"length_ft": 50, "width_ft": -1, "depth_ft": 5}`))
	rec := httptest.NewRecorder()
	h.Earthwork(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestEarthworkHandlerUnderflow(t *testing.T) {
	est := &recordingEstimator{}
	h := &Handler{Est: est, Log: logger.Nop()}
	req := httptest.NewRequest(http.MethodPost, "/api/earthwork/estimate",
		strings.NewReader(`{"length_ft": 1e-200, "width_ft": 1e-200, "depth_ft": 1e-200}`))
	rec := httptest.NewRecorder()
	h.Earthwork(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if len(est.volumes) != 0 {
		t.Fatalf("estimator saw %v", est.volumes)
	}
}

func TestEarthworkHandlerBodyLimit(t *testing.T) {
	h := &Handler{Log: logger.Nop()}
	body := `{"length_ft": 10, "width_ft": 5, "depth_ft": 2, "pad": "` + strings.Repeat("x", maxBody) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/earthwork/estimate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Earthwork(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}
