// Package telemetry records per-call timing samples at the service
// boundary. Recording is best-effort: a telemetry failure is logged and
// dropped, never surfaced to the caller.
package telemetry

import (
	"context"
	"io"
	"log"
	"time"

	"investment-panel/internal/domain"
	"investment-panel/internal/storage"
)

// Recorder writes call records to a telemetry store.
type Recorder struct {
	store  storage.TelemetryStore
	logger *log.Logger
	now    func() time.Time
}

// RecorderOptions contains configuration for creating a Recorder.
type RecorderOptions struct {
	// Store may be nil; recording then becomes a no-op.
	Store  storage.TelemetryStore
	Logger *log.Logger

	// Now overrides the clock; defaults to time.Now.
	Now func() time.Time
}

// NewRecorder creates a telemetry recorder.
func NewRecorder(opts RecorderOptions) *Recorder {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Recorder{store: opts.Store, logger: logger, now: now}
}

// Record writes one sample for a service call.
func (r *Recorder) Record(ctx context.Context, service string, duration time.Duration, success bool) {
	if r.store == nil {
		return
	}

	rec := &domain.CallRecord{
		Service:    service,
		DurationMs: duration.Milliseconds(),
		Success:    success,
		CalledAt:   r.now().UnixMilli(),
	}

	if err := r.store.Insert(ctx, rec); err != nil {
		r.logger.Printf("telemetry insert failed for %s: %v", service, err)
	}
}

// Timed runs fn, times it and records one sample under service. The
// function's error passes through unchanged.
func (r *Recorder) Timed(ctx context.Context, service string, fn func(context.Context) error) error {
	start := r.now()
	err := fn(ctx)
	r.Record(ctx, service, r.now().Sub(start), err == nil)
	return err
}
