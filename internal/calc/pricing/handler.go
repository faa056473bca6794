package pricing

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"Takeoff/internal/calc/takeoff"
	"Takeoff/internal/logger"
	"Takeoff/internal/respond"
)

// Current returns the latest price table. The price book implements it.
type Current interface {
	Table() Table
}

// dated is implemented by books that know when they were last refreshed.
type dated interface {
	Updated() time.Time
}

type Handler struct {
	Book Current
	Log  *logger.Logger
}

type CostRequest struct {
	Report *takeoff.Report `json:"report"`
	Prices Table           `json:"prices,omitempty"`
}

// Cost prices a report. Without prices in the request the current price
// book is used.
func (h *Handler) Cost(w http.ResponseWriter, r *http.Request) {
	var req CostRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	if req.Report == nil {
		respond.Error(w, http.StatusBadRequest, takeoff.Invalid("report", "is required"))
		return
	}
	if err := req.Report.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, takeoff.Invalid("report", "%v", err))
		return
	}
	table := req.Prices
	if table == nil {
		if h.Book == nil {
			respond.Error(w, http.StatusServiceUnavailable, errors.New("no price book configured"))
			return
		}
		table = h.Book.Table()
	} else if err := table.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, takeoff.Invalid("prices", "%v", err))
		return
	}

	est := EstimateCost(req.Report, table)
	if len(est.Missing) > 0 {
		h.Log.Warn("cost: no price for %v", est.Missing)
	}
	respond.JSON(w, http.StatusOK, est)
}

// Prices lists the current price book.
func (h *Handler) Prices(w http.ResponseWriter, r *http.Request) {
	if h.Book == nil {
		respond.JSON(w, http.StatusOK, Table{})
		return
	}
	if d, ok := h.Book.(dated); ok && !d.Updated().IsZero() {
		w.Header().Set("Last-Modified", d.Updated().UTC().Format(http.TimeFormat))
	}
	respond.JSON(w, http.StatusOK, h.Book.Table())
}
