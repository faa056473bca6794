package advisor

import (
	"encoding/json"
	"errors"
	"net/http"

	"Takeoff/internal/logger"
	"Takeoff/internal/respond"
)

// Handler serves earthwork estimates. Est may be nil, in which case only
// the volume is returned.
type Handler struct {
	Est Estimator
	Log *logger.Logger
}

const maxBody = 1 << 16

type EarthworkRequest struct {
	LengthFt float64 `json:"length_ft"`
	WidthFt  float64 `json:"width_ft"`
	DepthFt  float64 `json:"depth_ft"`
}

type EarthworkResponse struct {
	VolumeCft    float64   `json:"volume_cft"`
	Manpower     *Manpower `json:"manpower,omitempty"`
	AdvisorError string    `json:"advisor_error,omitempty"`
}

// Earthwork answers with the volume even when the estimator fails; the
// failure is reported alongside it.
func (h *Handler) Earthwork(w http.ResponseWriter, r *http.Request) {
	var req EarthworkRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	v, m, err := Feed(r.Context(), h.Est, req.LengthFt, req.WidthFt, req.DepthFt)
	if err != nil && !errors.Is(err, ErrEstimator) {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	res := EarthworkResponse{VolumeCft: v}
	switch {
	case err != nil:
		h.Log.Warn("advisor: %v", err)
		res.AdvisorError = err.Error()
	case h.Est != nil:
		res.Manpower = &m
	}
	respond.JSON(w, http.StatusOK, res)
}
