package services

import (
	"context"

	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/SscSPs/securities_vault/internal/dto"
	"github.com/shopspring/decimal"
)

// AuditSvc exposes the committed audit trail to auditors.
type AuditSvc interface {
	// ListAuditEvents pages through the in-process log, newest first.
	ListAuditEvents(ctx context.Context, params dto.ListAuditEventsParams, caller domain.Address) (*dto.ListAuditEventsResponse, error)

	// ListAuditHistory pages through the persisted events touching account.
	// It fails with apperrors.ErrNotFound when no audit store is configured.
	ListAuditHistory(ctx context.Context, account domain.Address, params dto.ListAuditHistoryParams, caller domain.Address) (*dto.ListAuditEventsResponse, error)
}

// ValuationSvc computes the aggregate value of custodied assets.
type ValuationSvc interface {
	TotalValueLocked(ctx context.Context) (decimal.Decimal, []domain.AssetValuation, error)
}
