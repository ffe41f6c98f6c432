package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/SscSPs/securities_vault/internal/core/ports"
	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// singleAssetVault custodies one asset fixed at construction. It has no
// asset whitelist and refuses to recover its own asset.
type singleAssetVault struct {
	*vaultCore
	asset domain.AssetID
}

var _ portssvc.SingleAssetVaultSvc = (*singleAssetVault)(nil)

// NewSingleAssetVaultService creates a vault for asset with the given per-account limit.
func NewSingleAssetVaultService(ledger *Ledger, access portssvc.AccessReaderSvc, gateway ports.AssetGateway, asset domain.AssetID, limit decimal.Decimal, opts ...ServiceOption) portssvc.SingleAssetVaultSvc {
	core := newVaultCore(ledger, access, gateway, false, opts)
	core.limits[asset] = limit
	core.manages = func(a domain.AssetID) bool { return a == asset }
	return &singleAssetVault{vaultCore: core, asset: asset}
}

func (s *singleAssetVault) Asset() domain.AssetID {
	return s.asset
}

func (s *singleAssetVault) Deposit(ctx context.Context, amount decimal.Decimal, caller domain.Address) (decimal.Decimal, error) {
	start := time.Now()
	balance, err := s.deposit(ctx, s.asset, amount, caller)
	if err = s.finish(ctx, "single_deposit", start, err, slog.String("amount", amount.String()), slog.String("caller", caller.String())); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

func (s *singleAssetVault) Withdraw(ctx context.Context, amount decimal.Decimal, caller domain.Address) (decimal.Decimal, error) {
	start := time.Now()
	balance, err := s.withdraw(ctx, s.asset, amount, caller)
	if err = s.finish(ctx, "single_withdraw", start, err, slog.String("amount", amount.String()), slog.String("caller", caller.String())); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

func (s *singleAssetVault) EmergencyWithdraw(ctx context.Context, caller domain.Address) (decimal.Decimal, error) {
	start := time.Now()
	amount, err := s.emergencyWithdraw(ctx, s.asset, caller)
	if err = s.finish(ctx, "single_emergency_withdraw", start, err, slog.String("caller", caller.String())); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

func (s *singleAssetVault) GetMyBalance(ctx context.Context, caller domain.Address) (decimal.Decimal, error) {
	return s.ownBalance(ctx, s.asset, caller)
}

func (s *singleAssetVault) ViewBalance(ctx context.Context, account domain.Address, caller domain.Address) (decimal.Decimal, error) {
	return s.auditBalance(ctx, s.asset, account, caller)
}

func (s *singleAssetVault) Pause(ctx context.Context, caller domain.Address) error {
	start := time.Now()
	return s.finish(ctx, "single_pause", start, s.setPaused(ctx, true, caller), slog.String("caller", caller.String()))
}

func (s *singleAssetVault) Unpause(ctx context.Context, caller domain.Address) error {
	start := time.Now()
	return s.finish(ctx, "single_unpause", start, s.setPaused(ctx, false, caller), slog.String("caller", caller.String()))
}

func (s *singleAssetVault) SetDepositLimit(ctx context.Context, limit decimal.Decimal, caller domain.Address) error {
	start := time.Now()
	err := s.setDepositLimit(ctx, s.asset, limit, caller)
	return s.finish(ctx, "single_set_deposit_limit", start, err, slog.String("limit", limit.String()))
}

func (s *singleAssetVault) RecoverERC20(ctx context.Context, asset domain.AssetID, amount decimal.Decimal, caller domain.Address) error {
	start := time.Now()
	err := s.recoverForeign(ctx, asset, amount, caller)
	return s.finish(ctx, "single_recover_erc20", start, err, slog.String("asset", asset.String()), slog.String("amount", amount.String()))
}

func (s *singleAssetVault) State() domain.PauseState {
	return s.state()
}

func (s *singleAssetVault) TotalDeposited() decimal.Decimal {
	return s.ledger.TotalOf(s.asset)
}

func (s *singleAssetVault) DepositLimit() decimal.Decimal {
	return s.limitOf(s.asset)
}
