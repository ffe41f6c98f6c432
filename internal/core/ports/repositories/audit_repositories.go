package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/securities_vault/internal/core/domain"
)

// AuditEventWriter persists committed audit events.
type AuditEventWriter interface {
	// AppendAuditEvents stores a batch of events. The batch is stored entirely or not at all.
	AppendAuditEvents(ctx context.Context, events []domain.AuditEvent) error
}

// AuditCursor marks the last event of a history page. History is ordered by
// (OccurredAt, Sequence, EventID), newest first.
type AuditCursor struct {
	OccurredAt time.Time
	Sequence   uint64
	EventID    string
}

// AuditEventReader defines read operations for persisted audit events
type AuditEventReader interface {
	// ListAuditEventsByAccount returns events touching account, newest first, strictly after
	// before in that order. A nil before starts from the newest event.
	ListAuditEventsByAccount(ctx context.Context, account domain.Address, limit int, before *AuditCursor) ([]domain.AuditEvent, error)
}

// AuditRepositoryFacade combines all audit-related repository interfaces
type AuditRepositoryFacade interface {
	AuditEventWriter
	AuditEventReader
}

// AuditRepositoryWithTx extends AuditRepositoryFacade with transaction capabilities
type AuditRepositoryWithTx interface {
	AuditRepositoryFacade
	TransactionManager
}
