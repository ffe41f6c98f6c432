package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/securities_vault/internal/core/domain"
	portsrepo "github.com/SscSPs/securities_vault/internal/core/ports/repositories"
	"github.com/SscSPs/securities_vault/internal/models"
	"github.com/SscSPs/securities_vault/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	BaseRepository
}

// newPgxAuditRepository creates a new repository for persisted audit events.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryWithTx {
	return &PgxAuditRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AuditRepositoryWithTx = (*PgxAuditRepository)(nil)

// AppendAuditEvents inserts a batch of events in one transaction.
// Events already stored under the same event ID are skipped, so redelivery is harmless.
func (r *PgxAuditRepository) AppendAuditEvents(ctx context.Context, events []domain.AuditEvent) error {
	if len(events) == 0 {
		return nil
	}

	query := `
		INSERT INTO audit_events (event_id, sequence, action, actor, accounts, asset, amount, running_total, reason, attributes, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8::numeric, $9, $10, $11)
		ON CONFLICT (event_id) DO NOTHING;
	`

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	batch := &pgx.Batch{}
	for _, event := range events {
		m := mapping.ToModelAuditEvent(event)
		batch.Queue(query,
			m.EventID,
			m.Sequence,
			m.Action,
			m.Actor,
			m.Accounts,
			m.Asset,
			m.Amount,
			m.RunningTotal,
			m.Reason,
			m.Attributes,
			m.OccurredAt,
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert %d audit events: %w", len(events), err)
	}

	return r.Commit(ctx, tx)
}

// ListAuditEventsByAccount retrieves events where account is the actor or an affected account,
// newest first. A nil before starts from the most recent event.
func (r *PgxAuditRepository) ListAuditEventsByAccount(ctx context.Context, account domain.Address, limit int, before *portsrepo.AuditCursor) ([]domain.AuditEvent, error) {
	query := `
		SELECT event_id, sequence, action, actor, accounts, asset, amount, running_total, reason, attributes, occurred_at
		FROM audit_events
		WHERE ($1 = ANY(accounts) OR actor = $1)
		  AND ($2::timestamptz IS NULL OR (occurred_at, sequence, event_id) < ($2, $3::bigint, $4::uuid))
		ORDER BY occurred_at DESC, sequence DESC, event_id DESC
		LIMIT $5;
	`

	var (
		beforeAt  *time.Time
		beforeSeq int64
		beforeID  string
	)
	if before != nil {
		beforeAt = &before.OccurredAt
		beforeSeq = int64(before.Sequence)
		beforeID = before.EventID
	}
	if beforeID == "" {
		beforeID = "00000000-0000-0000-0000-000000000000"
	}

	rows, err := r.Pool.Query(ctx, query, account.String(), beforeAt, beforeSeq, beforeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit events for %s: %w", account, err)
	}
	defer rows.Close()

	modelEvents, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AuditEvent, error) {
		var event models.AuditEvent
		err := row.Scan(
			&event.EventID,
			&event.Sequence,
			&event.Action,
			&event.Actor,
			&event.Accounts,
			&event.Asset,
			&event.Amount,
			&event.RunningTotal,
			&event.Reason,
			&event.Attributes,
			&event.OccurredAt,
		)
		return event, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan audit events: %w", err)
	}

	return mapping.ToDomainAuditEvents(modelEvents), nil
}
