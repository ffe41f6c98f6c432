package services

import (
	"sync"
	"time"

	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/google/uuid"
)

// AuditLog is the append-only record of committed operations. It doubles as
// the outbox read by AuditRelay, so it is safe for concurrent readers.
type AuditLog struct {
	mu     sync.RWMutex
	events []domain.AuditEvent
}

// NewAuditLog creates an empty log.
func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

// append assigns ids, sequence numbers and missing timestamps, then stores the events.
func (l *AuditLog) append(now time.Time, events ...domain.AuditEvent) []domain.AuditEvent {
	if len(events) == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	committed := make([]domain.AuditEvent, len(events))
	for i, event := range events {
		event.EventID = uuid.NewString()
		event.Sequence = uint64(len(l.events)) + 1
		if event.Timestamp.IsZero() {
			event.Timestamp = now
		}
		l.events = append(l.events, event)
		committed[i] = event
	}
	return committed
}

// Len returns the number of committed events.
func (l *AuditLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}

// LastSequence returns the sequence number of the newest event, or 0.
func (l *AuditLog) LastSequence() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return uint64(len(l.events))
}

// Since returns up to limit events with a sequence greater than after, oldest first.
// A non-positive limit returns every remaining event.
func (l *AuditLog) Since(after uint64, limit int) []domain.AuditEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if after >= uint64(len(l.events)) {
		return nil
	}
	pending := l.events[after:]
	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}
	return append([]domain.AuditEvent(nil), pending...)
}

// AuditFilter narrows a listing of the log.
type AuditFilter struct {
	Account domain.Address
	Action  domain.AuditAction
	// Before only keeps events with a smaller sequence number; 0 means no bound.
	Before uint64
	Limit  int
}

// List returns matching events, newest first.
func (l *AuditLog) List(filter AuditFilter) []domain.AuditEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()

	start := len(l.events)
	if filter.Before > 0 && filter.Before <= uint64(len(l.events)) {
		start = int(filter.Before) - 1
	}

	var out []domain.AuditEvent
	for i := start - 1; i >= 0; i-- {
		event := l.events[i]
		if filter.Action != "" && event.Action != filter.Action {
			continue
		}
		if filter.Account != "" && !touches(event, filter.Account) {
			continue
		}
		out = append(out, event)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out
}

func touches(event domain.AuditEvent, account domain.Address) bool {
	if event.Actor == account {
		return true
	}
	for _, a := range event.Accounts {
		if a == account {
			return true
		}
	}
	return false
}
