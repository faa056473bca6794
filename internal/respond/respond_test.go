package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"Takeoff/internal/calc/takeoff"
)

func TestErrorCarriesField(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusBadRequest, takeoff.Invalid("bar_spacing_in", "must be positive, got 0"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	var body ErrorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Field != "bar_spacing_in" || body.Error == "" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestStatus(t *testing.T) {
	if got := Status(takeoff.Invalid("x", "bad"), http.StatusInternalServerError); got != http.StatusBadRequest {
		t.Errorf("invalid input status = %d", got)
	}
	if got := Status(errors.New("boom"), http.StatusInternalServerError); got != http.StatusInternalServerError {
		t.Errorf("fallback status = %d", got)
	}
}
