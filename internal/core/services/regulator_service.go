package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// regulatorService moves security tokens between any two accounts without
// consulting the whitelist or the partitions.
type regulatorService struct {
	BaseService
	ledger *Ledger
	asset  domain.AssetID
}

var _ portssvc.RegulatorSvc = (*regulatorService)(nil)

// NewRegulatorService creates the forced transfer path for the token identified by asset.
func NewRegulatorService(ledger *Ledger, access portssvc.AccessReaderSvc, asset domain.AssetID, opts ...ServiceOption) portssvc.RegulatorSvc {
	return &regulatorService{
		BaseService: newBaseService(access, opts),
		ledger:      ledger,
		asset:       asset,
	}
}

// ForceTransfer returns the committed ForcedTransfer record. A rejected
// forced transfer leaves no record.
func (s *regulatorService) ForceTransfer(ctx context.Context, from, to domain.Address, amount decimal.Decimal, reason string, caller domain.Address) (*domain.AuditEvent, error) {
	start := time.Now()
	committed, err := s.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := s.AuthorizeCaller(ctx, caller, domain.RoleRegulator); err != nil {
			return err
		}
		if from.IsZero() || to.IsZero() {
			return fmt.Errorf("%w: from and to are required", apperrors.ErrValidation)
		}
		if err := domain.ValidateAmount(amount); err != nil {
			return err
		}
		if err := s.ledger.move(uow, s.asset, from, to, amount); err != nil {
			return err
		}
		uow.emit(domain.AuditEvent{
			Action:       domain.ActionForcedTransfer,
			Actor:        caller,
			Accounts:     []domain.Address{from, to},
			Asset:        s.asset,
			Amount:       decPtr(amount),
			RunningTotal: decPtr(s.ledger.TotalOf(s.asset)),
			Reason:       reason,
		})
		return nil
	})
	err = s.finish(ctx, "force_transfer", start, err,
		slog.String("from", from.String()), slog.String("to", to.String()), slog.String("amount", amount.String()), slog.String("caller", caller.String()))
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Forced transfer executed",
		slog.String("from", from.String()), slog.String("to", to.String()), slog.String("amount", amount.String()), slog.String("reason", reason))
	return &committed[0], nil
}
