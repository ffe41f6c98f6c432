package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/securities_vault/internal/core/domain"
	portsrepo "github.com/SscSPs/securities_vault/internal/core/ports/repositories"
	"github.com/SscSPs/securities_vault/internal/platform/metrics"
)

const defaultRelayBatchSize = 100

// AuditRelay delivers committed events from the audit log to a sink. The log
// is the outbox: the cursor only advances once the sink accepted a batch, so
// delivery is at-least-once and sinks must ignore duplicate event ids.
type AuditRelay struct {
	log       *AuditLog
	sink      portsrepo.AuditEventWriter
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
	metrics   *metrics.Metrics

	mu     sync.Mutex
	cursor uint64
}

// RelayOption configures an AuditRelay.
type RelayOption func(*AuditRelay)

// WithRelayInterval sets how often Run polls the log.
func WithRelayInterval(d time.Duration) RelayOption {
	return func(r *AuditRelay) {
		r.interval = d
	}
}

// WithRelayBatchSize caps the number of events per sink call.
func WithRelayBatchSize(n int) RelayOption {
	return func(r *AuditRelay) {
		r.batchSize = n
	}
}

// WithRelayLogger sets the logger used for delivery failures.
func WithRelayLogger(logger *slog.Logger) RelayOption {
	return func(r *AuditRelay) {
		r.logger = logger
	}
}

// WithRelayMetrics sets the metrics collector.
func WithRelayMetrics(m *metrics.Metrics) RelayOption {
	return func(r *AuditRelay) {
		r.metrics = m
	}
}

func NewAuditRelay(log *AuditLog, sink portsrepo.AuditEventWriter, opts ...RelayOption) *AuditRelay {
	r := &AuditRelay{
		log:       log,
		sink:      sink,
		interval:  time.Second,
		batchSize: defaultRelayBatchSize,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Cursor returns the sequence number of the last delivered event.
func (r *AuditRelay) Cursor() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor
}

// Flush delivers every pending event. It stops at the first failed batch and
// leaves the cursor on the last delivered event.
func (r *AuditRelay) Flush(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		batch := r.log.Since(r.cursor, r.batchSize)
		if len(batch) == 0 {
			return nil
		}
		if err := r.sink.AppendAuditEvents(ctx, batch); err != nil {
			r.metrics.IncAuditRelayFailures()
			return fmt.Errorf("relaying audit events after sequence %d: %w", r.cursor, err)
		}
		r.cursor = batch[len(batch)-1].Sequence
		r.metrics.AddAuditEventsRelayed(len(batch))
	}
}

// Run flushes on every tick until ctx is done, then makes a final attempt
// with a short grace period.
func (r *AuditRelay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			drainCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := r.Flush(drainCtx); err != nil {
				r.logger.Error("Final audit relay flush failed", slog.String("error", err.Error()), slog.Uint64("cursor", r.Cursor()))
			}
			return ctx.Err()
		case <-ticker.C:
			if err := r.Flush(ctx); err != nil {
				r.logger.Warn("Audit relay flush failed, will retry", slog.String("error", err.Error()), slog.Uint64("cursor", r.Cursor()))
			}
		}
	}
}

// FanoutWriter writes each batch to every sink in order. A batch counts as
// written only when all sinks accepted it.
type FanoutWriter []portsrepo.AuditEventWriter

var _ portsrepo.AuditEventWriter = FanoutWriter(nil)

func (f FanoutWriter) AppendAuditEvents(ctx context.Context, events []domain.AuditEvent) error {
	var errs []error
	for _, sink := range f {
		if err := sink.AppendAuditEvents(ctx, events); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
