// Package advisor asks an external estimator how long an excavation takes
// and how many workers it needs. The estimator only ever sees the volume.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"Takeoff/internal/calc/earthwork"
)

// ErrBadReply marks replies that could not be read as a Manpower estimate.
// Asking again rarely helps, so they are not retried.
var ErrBadReply = errors.New("advisor: unreadable reply")

// ErrEstimator wraps failures of the estimator itself, as opposed to
// invalid dimensions.
var ErrEstimator = errors.New("advisor: estimator failed")

// Manpower is an estimate range for one excavation.
type Manpower struct {
	MinDays    int    `json:"min_days"`
	MaxDays    int    `json:"max_days"`
	MinWorkers int    `json:"min_workers"`
	MaxWorkers int    `json:"max_workers"`
	Notes      string `json:"notes,omitempty"`
}

func (m Manpower) validate() error {
	if m.MinDays < 0 || m.MinWorkers < 0 || m.MaxDays < m.MinDays || m.MaxWorkers < m.MinWorkers {
		return fmt.Errorf("%w: inconsistent ranges %+v", ErrBadReply, m)
	}
	return nil
}

type Estimator interface {
	Estimate(ctx context.Context, volumeCft float64) (Manpower, error)
}

// Feed computes the earthwork volume and hands only that number to est.
// Estimator failures are wrapped in ErrEstimator and still carry the volume.
// A nil est yields the volume alone.
func Feed(ctx context.Context, est Estimator, lengthFt, widthFt, depthFt float64) (float64, Manpower, error) {
	v, err := earthwork.Volume(lengthFt, widthFt, depthFt)
	if err != nil {
		return 0, Manpower{}, err
	}
	if est == nil {
		return v, Manpower{}, nil
	}
	m, err := est.Estimate(ctx, v)
	if err != nil {
		return v, Manpower{}, fmt.Errorf("%w: %w", ErrEstimator, err)
	}
	return v, m, nil
}

type retrying struct {
	next    Estimator
	retries uint64
	base    time.Duration
	timeout time.Duration
}

// WithRetry retries failed calls with exponential backoff starting at base.
// Each attempt gets its own timeout; a zero timeout leaves ctx alone.
func WithRetry(next Estimator, retries int, base, timeout time.Duration) Estimator {
	if retries < 0 {
		retries = 0
	}
	if base <= 0 {
		base = 500 * time.Millisecond
	}
	return &retrying{next: next, retries: uint64(retries), base: base, timeout: timeout}
}

func (r *retrying) Estimate(ctx context.Context, volumeCft float64) (Manpower, error) {
	var out Manpower
	b := retry.WithMaxRetries(r.retries, retry.NewExponential(r.base))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		actx := ctx
		if r.timeout > 0 {
			var cancel context.CancelFunc
			actx, cancel = context.WithTimeout(ctx, r.timeout)
			defer cancel()
		}
		m, err := r.next.Estimate(actx, volumeCft)
		if err != nil {
			if errors.Is(err, ErrBadReply) {
				return err
			}
			return retry.RetryableError(err)
		}
		out = m
		return nil
	})
	return out, err
}
