package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	portsrepo "github.com/SscSPs/securities_vault/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
	"github.com/SscSPs/securities_vault/internal/dto"
	"github.com/SscSPs/securities_vault/internal/utils/pagination"
)

const (
	defaultAuditPageSize = 20
	maxAuditPageSize     = 200
)

// pageLimit clamps a requested page size into [1, maxAuditPageSize]; zero or
// negative sizes fall back to the default.
func pageLimit(requested int) int {
	switch {
	case requested <= 0:
		return defaultAuditPageSize
	case requested > maxAuditPageSize:
		return maxAuditPageSize
	}
	return requested
}

type auditService struct {
	BaseService
	log  *AuditLog
	repo portsrepo.AuditEventReader
}

var _ portssvc.AuditSvc = (*auditService)(nil)

// NewAuditService lists events from log. repo may be nil when no audit store is configured.
func NewAuditService(log *AuditLog, access portssvc.AccessReaderSvc, repo portsrepo.AuditEventReader, opts ...ServiceOption) portssvc.AuditSvc {
	return &auditService{
		BaseService: newBaseService(access, opts),
		log:         log,
		repo:        repo,
	}
}

func (s *auditService) ListAuditEvents(ctx context.Context, params dto.ListAuditEventsParams, caller domain.Address) (*dto.ListAuditEventsResponse, error) {
	if err := s.AuthorizeCaller(ctx, caller, domain.RoleAuditor); err != nil {
		s.LogWarn(ctx, err, "Audit listing rejected", slog.String("caller", caller.String()))
		return nil, err
	}

	limit := pageLimit(params.Limit)
	filter := AuditFilter{Action: domain.AuditAction(params.Action), Limit: limit + 1}
	if params.Account != "" {
		account, err := domain.ParseAddress(params.Account)
		if err != nil {
			return nil, err
		}
		filter.Account = account
	}
	if params.NextToken != nil && *params.NextToken != "" {
		before, err := pagination.DecodeSequenceToken(*params.NextToken)
		if err != nil {
			return nil, err
		}
		filter.Before = before
	}

	events := s.log.List(filter)
	resp := &dto.ListAuditEventsResponse{Events: events}
	if len(events) > limit {
		resp.Events = events[:limit]
		token := pagination.EncodeSequenceToken(resp.Events[len(resp.Events)-1].Sequence)
		resp.NextToken = &token
	}
	if resp.Events == nil {
		resp.Events = []domain.AuditEvent{}
	}
	return resp, nil
}

func (s *auditService) ListAuditHistory(ctx context.Context, account domain.Address, params dto.ListAuditHistoryParams, caller domain.Address) (*dto.ListAuditEventsResponse, error) {
	if err := s.AuthorizeCaller(ctx, caller, domain.RoleAuditor); err != nil {
		s.LogWarn(ctx, err, "Audit history rejected", slog.String("caller", caller.String()))
		return nil, err
	}
	if s.repo == nil {
		return nil, fmt.Errorf("%w: no audit store configured", apperrors.ErrNotFound)
	}

	var before *portsrepo.AuditCursor
	if params.NextToken != nil && *params.NextToken != "" {
		occurredAt, sequence, eventID, err := pagination.DecodeHistoryToken(*params.NextToken)
		if err != nil {
			return nil, err
		}
		before = &portsrepo.AuditCursor{OccurredAt: occurredAt, Sequence: sequence, EventID: eventID}
	}

	limit := pageLimit(params.Limit)
	events, err := s.repo.ListAuditEventsByAccount(ctx, account, limit+1, before)
	if err != nil {
		s.LogError(ctx, err, "Failed to read audit history", slog.String("account", account.String()))
		return nil, err
	}
	resp := &dto.ListAuditEventsResponse{Events: events}
	if len(events) > limit {
		resp.Events = events[:limit]
		last := resp.Events[len(resp.Events)-1]
		token := pagination.EncodeHistoryToken(last.Timestamp, last.Sequence, last.EventID)
		resp.NextToken = &token
	}
	if resp.Events == nil {
		resp.Events = []domain.AuditEvent{}
	}
	return resp, nil
}
