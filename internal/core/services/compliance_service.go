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

// complianceService is the security token together with its compliance
// engine. It exclusively owns the whitelist and the partition labels; token
// balances live in the shared ledger under the token's asset id.
type complianceService struct {
	BaseService
	ledger           *Ledger
	asset            domain.AssetID
	defaultPartition domain.Partition

	whitelist  map[domain.Address]bool
	partitions map[domain.Address]domain.Partition
}

// Ensure complianceService implements the ComplianceSvcFacade interface
var _ portssvc.ComplianceSvcFacade = (*complianceService)(nil)

// NewComplianceService creates the security token identified by asset.
// An empty defaultPartition falls back to domain.DefaultPartition.
func NewComplianceService(ledger *Ledger, access portssvc.AccessReaderSvc, asset domain.AssetID, defaultPartition domain.Partition, opts ...ServiceOption) portssvc.ComplianceSvcFacade {
	if defaultPartition == "" {
		defaultPartition = domain.DefaultPartition
	}
	return &complianceService{
		BaseService:      newBaseService(access, opts),
		ledger:           ledger,
		asset:            asset,
		defaultPartition: defaultPartition,
		whitelist:        make(map[domain.Address]bool),
		partitions:       make(map[domain.Address]domain.Partition),
	}
}

func (s *complianceService) Asset() domain.AssetID {
	return s.asset
}

func (s *complianceService) BalanceOf(account domain.Address) decimal.Decimal {
	return s.ledger.BalanceOf(s.asset, account)
}

func (s *complianceService) TotalSupply() decimal.Decimal {
	return s.ledger.TotalOf(s.asset)
}

func (s *complianceService) Status(account domain.Address) domain.ComplianceStatus {
	return domain.ComplianceStatus{
		Account:     account,
		Whitelisted: s.whitelist[account],
		Partition:   s.partitions[account],
	}
}

func (s *complianceService) setWhitelisted(uow *unitOfWork, account domain.Address, whitelisted bool) {
	previous, existed := s.whitelist[account]
	s.whitelist[account] = whitelisted
	uow.onRollback(func() {
		if existed {
			s.whitelist[account] = previous
			return
		}
		delete(s.whitelist, account)
	})
}

func (s *complianceService) setPartition(uow *unitOfWork, account domain.Address, partition domain.Partition, caller domain.Address) {
	previous, existed := s.partitions[account]
	s.partitions[account] = partition
	uow.onRollback(func() {
		if existed {
			s.partitions[account] = previous
			return
		}
		delete(s.partitions, account)
	})
	uow.emit(domain.AuditEvent{
		Action:   domain.ActionPartitionAssigned,
		Actor:    caller,
		Accounts: []domain.Address{account},
		Attributes: map[string]string{
			"partition":         string(partition),
			"previousPartition": string(previous),
		},
	})
}

func (s *complianceService) AddToWhitelist(ctx context.Context, account domain.Address, caller domain.Address) error {
	start := time.Now()
	_, err := s.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := s.AuthorizeCaller(ctx, caller, domain.RoleCompliance); err != nil {
			return err
		}
		if account.IsZero() {
			return fmt.Errorf("%w: account is required", apperrors.ErrValidation)
		}
		s.setWhitelisted(uow, account, true)
		uow.emit(domain.AuditEvent{
			Action:     domain.ActionAddressWhitelisted,
			Actor:      caller,
			Accounts:   []domain.Address{account},
			Attributes: map[string]string{"whitelisted": "true"},
		})
		if _, ok := s.partitions[account]; !ok {
			s.setPartition(uow, account, s.defaultPartition, caller)
		}
		return nil
	})
	return s.finish(ctx, "add_to_whitelist", start, err, slog.String("account", account.String()), slog.String("caller", caller.String()))
}

// RemoveFromWhitelist revokes approval but keeps the partition label, so
// re-approval restores the account to its previous group.
func (s *complianceService) RemoveFromWhitelist(ctx context.Context, account domain.Address, caller domain.Address) error {
	start := time.Now()
	_, err := s.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := s.AuthorizeCaller(ctx, caller, domain.RoleCompliance); err != nil {
			return err
		}
		if account.IsZero() {
			return fmt.Errorf("%w: account is required", apperrors.ErrValidation)
		}
		s.setWhitelisted(uow, account, false)
		uow.emit(domain.AuditEvent{
			Action:     domain.ActionAddressWhitelisted,
			Actor:      caller,
			Accounts:   []domain.Address{account},
			Attributes: map[string]string{"whitelisted": "false"},
		})
		return nil
	})
	return s.finish(ctx, "remove_from_whitelist", start, err, slog.String("account", account.String()), slog.String("caller", caller.String()))
}

func (s *complianceService) AssignPartition(ctx context.Context, account domain.Address, partition domain.Partition, caller domain.Address) error {
	start := time.Now()
	_, err := s.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := s.AuthorizeCaller(ctx, caller, domain.RoleCompliance); err != nil {
			return err
		}
		if account.IsZero() {
			return fmt.Errorf("%w: account is required", apperrors.ErrValidation)
		}
		if partition == "" {
			return fmt.Errorf("%w: partition is required", apperrors.ErrValidation)
		}
		if !s.whitelist[account] {
			return fmt.Errorf("%w: %s", apperrors.ErrAccountNotWhitelisted, account)
		}
		s.setPartition(uow, account, partition, caller)
		return nil
	})
	return s.finish(ctx, "assign_partition", start, err,
		slog.String("account", account.String()), slog.String("partition", string(partition)), slog.String("caller", caller.String()))
}

func (s *complianceService) Issue(ctx context.Context, to domain.Address, amount decimal.Decimal, caller domain.Address) error {
	start := time.Now()
	_, err := s.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := s.AuthorizeCaller(ctx, caller, domain.RoleCompliance); err != nil {
			return err
		}
		if to.IsZero() {
			return fmt.Errorf("%w: recipient is required", apperrors.ErrValidation)
		}
		if err := domain.ValidateAmount(amount); err != nil {
			return err
		}
		if !s.whitelist[to] {
			return fmt.Errorf("%w: %s", apperrors.ErrRecipientNotWhitelisted, to)
		}
		s.ledger.credit(uow, s.asset, to, amount)
		uow.emit(domain.AuditEvent{
			Action:       domain.ActionTokensIssued,
			Actor:        caller,
			Accounts:     []domain.Address{to},
			Asset:        s.asset,
			Amount:       decPtr(amount),
			RunningTotal: decPtr(s.ledger.TotalOf(s.asset)),
		})
		return nil
	})
	return s.finish(ctx, "issue", start, err, slog.String("to", to.String()), slog.String("amount", amount.String()))
}

// checkParties names the first violated transfer condition.
func (s *complianceService) checkParties(from, to domain.Address) error {
	if !s.whitelist[from] {
		return fmt.Errorf("%w: %s", apperrors.ErrSenderNotWhitelisted, from)
	}
	if !s.whitelist[to] {
		return fmt.Errorf("%w: %s", apperrors.ErrRecipientNotWhitelisted, to)
	}
	if s.partitions[from] != s.partitions[to] {
		return fmt.Errorf("%w: %s is in %q, %s is in %q",
			apperrors.ErrPartitionMismatch, from, s.partitions[from], to, s.partitions[to])
	}
	return nil
}

func (s *complianceService) CanTransfer(from, to domain.Address, amount decimal.Decimal) bool {
	if amount.IsNegative() || s.checkParties(from, to) != nil {
		return false
	}
	return s.BalanceOf(from).GreaterThanOrEqual(amount)
}

func (s *complianceService) CanTransferByPartition(partition domain.Partition, from, to domain.Address, amount decimal.Decimal) bool {
	if s.partitions[from] != partition || s.partitions[to] != partition {
		return false
	}
	return s.CanTransfer(from, to, amount)
}

func (s *complianceService) Transfer(ctx context.Context, to domain.Address, amount decimal.Decimal, caller domain.Address) error {
	start := time.Now()
	err := s.transfer(ctx, "", to, amount, caller)
	return s.finish(ctx, "transfer", start, err, slog.String("from", caller.String()), slog.String("to", to.String()), slog.String("amount", amount.String()))
}

func (s *complianceService) TransferByPartition(ctx context.Context, partition domain.Partition, to domain.Address, amount decimal.Decimal, caller domain.Address) error {
	start := time.Now()
	var err error
	if partition == "" {
		err = fmt.Errorf("%w: partition is required", apperrors.ErrValidation)
	} else {
		err = s.transfer(ctx, partition, to, amount, caller)
	}
	return s.finish(ctx, "transfer_by_partition", start, err,
		slog.String("partition", string(partition)), slog.String("from", caller.String()), slog.String("to", to.String()), slog.String("amount", amount.String()))
}

// transfer is the ordinary path: the caller sends its own tokens. An empty
// partition skips the explicit partition check.
func (s *complianceService) transfer(ctx context.Context, partition domain.Partition, to domain.Address, amount decimal.Decimal, from domain.Address) error {
	_, err := s.ledger.execute(ctx, func(uow *unitOfWork) error {
		if from.IsZero() || to.IsZero() {
			return fmt.Errorf("%w: sender and recipient are required", apperrors.ErrValidation)
		}
		if err := domain.ValidateAmount(amount); err != nil {
			return err
		}
		if err := s.checkParties(from, to); err != nil {
			return err
		}
		if partition != "" && s.partitions[from] != partition {
			return fmt.Errorf("%w: %s is not in %q", apperrors.ErrPartitionMismatch, from, partition)
		}
		if err := s.ledger.move(uow, s.asset, from, to, amount); err != nil {
			return err
		}

		uow.emit(domain.AuditEvent{
			Action:       domain.ActionTransfer,
			Actor:        from,
			Accounts:     []domain.Address{from, to},
			Asset:        s.asset,
			Amount:       decPtr(amount),
			RunningTotal: decPtr(s.ledger.TotalOf(s.asset)),
			Attributes:   map[string]string{"partition": string(s.partitions[from])},
		})
		return nil
	})
	return err
}
