package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/SscSPs/securities_vault/internal/core/ports"
	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// vaultCore is the custody state machine shared by the multi-asset and the
// single-asset vault. Balances and running totals live in the ledger; the
// vault owns the pause flag, the limits and the asset whitelist.
type vaultCore struct {
	BaseService
	ledger     *Ledger
	gateway    ports.AssetGateway
	multiAsset bool
	// manages reports whether an asset belongs to this vault and must not be recovered.
	manages func(domain.AssetID) bool

	paused         bool
	limits         map[domain.AssetID]decimal.Decimal
	accountLimits  map[domain.AssetID]map[domain.Address]decimal.Decimal
	assetWhitelist map[domain.AssetID]bool
}

func newVaultCore(ledger *Ledger, access portssvc.AccessReaderSvc, gateway ports.AssetGateway, multiAsset bool, opts []ServiceOption) *vaultCore {
	v := &vaultCore{
		BaseService:    newBaseService(access, opts),
		ledger:         ledger,
		gateway:        gateway,
		multiAsset:     multiAsset,
		limits:         make(map[domain.AssetID]decimal.Decimal),
		accountLimits:  make(map[domain.AssetID]map[domain.Address]decimal.Decimal),
		assetWhitelist: make(map[domain.AssetID]bool),
	}
	v.custody.join(v)
	return v
}

func (v *vaultCore) state() domain.PauseState {
	if v.paused {
		return domain.Paused
	}
	return domain.Active
}

func (v *vaultCore) limitOf(asset domain.AssetID) decimal.Decimal {
	if limit, ok := v.limits[asset]; ok {
		return limit
	}
	return decimal.Zero
}

// effectiveLimit is the per-account override when one is set, else the asset limit.
func (v *vaultCore) effectiveLimit(asset domain.AssetID, account domain.Address) decimal.Decimal {
	if limit, ok := v.accountLimits[asset][account]; ok {
		return limit
	}
	return v.limitOf(asset)
}

func (v *vaultCore) requireState(want domain.PauseState, operation string) error {
	if v.state() != want {
		return fmt.Errorf("%w: %s requires the vault to be %s", apperrors.ErrInvalidState, operation, want)
	}
	return nil
}

func requireAsset(asset domain.AssetID) error {
	if asset.IsZero() {
		return fmt.Errorf("%w: asset is required", apperrors.ErrValidation)
	}
	return nil
}

func gatewayError(err error) error {
	return fmt.Errorf("%w: %w", apperrors.ErrGateway, err)
}

func (v *vaultCore) deposit(ctx context.Context, asset domain.AssetID, amount decimal.Decimal, caller domain.Address) (decimal.Decimal, error) {
	var balance decimal.Decimal
	_, err := v.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := v.AuthorizeCaller(ctx, caller, domain.RoleInvestor); err != nil {
			return err
		}
		if err := v.requireState(domain.Active, "deposit"); err != nil {
			return err
		}
		if err := domain.ValidateAmount(amount); err != nil {
			return err
		}
		if err := requireAsset(asset); err != nil {
			return err
		}
		if v.multiAsset && !v.assetWhitelist[asset] {
			return fmt.Errorf("%w: %s", apperrors.ErrAssetNotWhitelisted, asset)
		}
		limit := v.effectiveLimit(asset, caller)
		if next := v.ledger.BalanceOf(asset, caller).Add(amount); next.GreaterThan(limit) {
			return fmt.Errorf("%w: balance would be %s, limit is %s", apperrors.ErrLimitExceeded, next.String(), limit.String())
		}

		balance = v.ledger.credit(uow, asset, caller, amount)
		uow.emit(domain.AuditEvent{
			Action:       domain.ActionDeposited,
			Actor:        caller,
			Accounts:     []domain.Address{caller},
			Asset:        asset,
			Amount:       decPtr(amount),
			RunningTotal: decPtr(v.ledger.TotalOf(asset)),
		})

		if err := v.gateway.Pull(ctx, asset, caller, amount); err != nil {
			return gatewayError(err)
		}
		return nil
	})
	return balance, err
}

func (v *vaultCore) withdraw(ctx context.Context, asset domain.AssetID, amount decimal.Decimal, caller domain.Address) (decimal.Decimal, error) {
	var balance decimal.Decimal
	_, err := v.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := v.AuthorizeCaller(ctx, caller, domain.RoleInvestor); err != nil {
			return err
		}
		if err := v.requireState(domain.Active, "withdraw"); err != nil {
			return err
		}
		if err := domain.ValidateAmount(amount); err != nil {
			return err
		}
		if err := requireAsset(asset); err != nil {
			return err
		}

		next, err := v.ledger.debit(uow, asset, caller, amount)
		if err != nil {
			return err
		}
		balance = next
		uow.emit(domain.AuditEvent{
			Action:       domain.ActionWithdrawn,
			Actor:        caller,
			Accounts:     []domain.Address{caller},
			Asset:        asset,
			Amount:       decPtr(amount),
			RunningTotal: decPtr(v.ledger.TotalOf(asset)),
		})

		if err := v.gateway.Push(ctx, asset, caller, amount); err != nil {
			return gatewayError(err)
		}
		return nil
	})
	return balance, err
}

// emergencyWithdraw returns the amount paid out, which is the caller's whole balance.
func (v *vaultCore) emergencyWithdraw(ctx context.Context, asset domain.AssetID, caller domain.Address) (decimal.Decimal, error) {
	var amount decimal.Decimal
	_, err := v.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := v.AuthorizeCaller(ctx, caller, domain.RoleInvestor); err != nil {
			return err
		}
		if err := v.requireState(domain.Paused, "emergency withdrawal"); err != nil {
			return err
		}
		if err := requireAsset(asset); err != nil {
			return err
		}
		amount = v.ledger.BalanceOf(asset, caller)
		if amount.IsZero() {
			return fmt.Errorf("%w: nothing to withdraw", apperrors.ErrInsufficientBalance)
		}

		if _, err := v.ledger.debit(uow, asset, caller, amount); err != nil {
			return err
		}
		uow.emit(domain.AuditEvent{
			Action:       domain.ActionEmergencyWithdrawal,
			Actor:        caller,
			Accounts:     []domain.Address{caller},
			Asset:        asset,
			Amount:       decPtr(amount),
			RunningTotal: decPtr(v.ledger.TotalOf(asset)),
		})

		if err := v.gateway.Push(ctx, asset, caller, amount); err != nil {
			return gatewayError(err)
		}
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

func (v *vaultCore) setPaused(ctx context.Context, paused bool, caller domain.Address) error {
	_, err := v.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := v.AuthorizeCaller(ctx, caller, domain.RoleAdmin); err != nil {
			return err
		}
		action := domain.ActionUnpaused
		if paused {
			action = domain.ActionPaused
		}
		if v.paused == paused {
			return fmt.Errorf("%w: vault is already %s", apperrors.ErrInvalidState, v.state())
		}
		v.paused = paused
		uow.onRollback(func() { v.paused = !paused })
		uow.emit(domain.AuditEvent{Action: action, Actor: caller})
		return nil
	})
	return err
}

// applyLimit replaces the asset limit, recording the undo step and the event.
func (v *vaultCore) applyLimit(uow *unitOfWork, asset domain.AssetID, limit decimal.Decimal, caller domain.Address) {
	previous, existed := v.limits[asset]
	v.limits[asset] = limit
	uow.onRollback(func() {
		if existed {
			v.limits[asset] = previous
			return
		}
		delete(v.limits, asset)
	})
	uow.emit(domain.AuditEvent{
		Action:     domain.ActionDepositLimitUpdated,
		Actor:      caller,
		Asset:      asset,
		Amount:     decPtr(limit),
		Attributes: map[string]string{"previousLimit": previous.String()},
	})
}

func (v *vaultCore) setDepositLimit(ctx context.Context, asset domain.AssetID, limit decimal.Decimal, caller domain.Address) error {
	_, err := v.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := v.AuthorizeCaller(ctx, caller, domain.RoleAdmin); err != nil {
			return err
		}
		if err := requireAsset(asset); err != nil {
			return err
		}
		if err := domain.ValidateLimit(limit); err != nil {
			return err
		}
		v.applyLimit(uow, asset, limit, caller)
		return nil
	})
	return err
}

// recoverForeign pushes a foreign asset out of custody. Assets this vault
// manages, or that another vault sharing the custody account still holds,
// are refused.
func (v *vaultCore) recoverForeign(ctx context.Context, asset domain.AssetID, amount decimal.Decimal, caller domain.Address) error {
	_, err := v.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := v.AuthorizeCaller(ctx, caller, domain.RoleAdmin); err != nil {
			return err
		}
		if err := requireAsset(asset); err != nil {
			return err
		}
		if err := domain.ValidateAmount(amount); err != nil {
			return err
		}
		if v.manages(asset) {
			return fmt.Errorf("%w: cannot recover vault asset %s", apperrors.ErrValidation, asset)
		}
		if v.custody.managedElsewhere(v, asset) {
			return fmt.Errorf("%w: asset %s is managed by another vault in the same custody", apperrors.ErrValidation, asset)
		}
		uow.emit(domain.AuditEvent{
			Action:   domain.ActionTokensRecovered,
			Actor:    caller,
			Accounts: []domain.Address{caller},
			Asset:    asset,
			Amount:   decPtr(amount),
		})
		if err := v.gateway.Push(ctx, asset, caller, amount); err != nil {
			return gatewayError(err)
		}
		return nil
	})
	return err
}

func (v *vaultCore) ownBalance(ctx context.Context, asset domain.AssetID, caller domain.Address) (decimal.Decimal, error) {
	if err := v.AuthorizeCaller(ctx, caller, domain.RoleInvestor); err != nil {
		return decimal.Zero, err
	}
	return v.ledger.BalanceOf(asset, caller), nil
}

func (v *vaultCore) auditBalance(ctx context.Context, asset domain.AssetID, account domain.Address, caller domain.Address) (decimal.Decimal, error) {
	if err := v.AuthorizeCaller(ctx, caller, domain.RoleAuditor); err != nil {
		return decimal.Zero, err
	}
	return v.ledger.BalanceOf(asset, account), nil
}

// vaultService is the multi-asset vault.
type vaultService struct {
	*vaultCore
}

// Ensure vaultService implements the VaultSvcFacade interface
var _ portssvc.VaultSvcFacade = (*vaultService)(nil)

// NewVaultService creates a multi-asset vault. Each entry of assets is
// whitelisted for deposits with its initial limit.
func NewVaultService(ledger *Ledger, access portssvc.AccessReaderSvc, gateway ports.AssetGateway, assets []domain.DepositLimitUpdate, opts ...ServiceOption) portssvc.VaultSvcFacade {
	core := newVaultCore(ledger, access, gateway, true, opts)
	for _, a := range assets {
		core.limits[a.Asset] = a.Limit
		core.assetWhitelist[a.Asset] = true
	}
	core.manages = func(a domain.AssetID) bool {
		return !core.limitOf(a).IsZero()
	}
	return &vaultService{vaultCore: core}
}

func (s *vaultService) Deposit(ctx context.Context, asset domain.AssetID, amount decimal.Decimal, caller domain.Address) (decimal.Decimal, error) {
	start := time.Now()
	balance, err := s.deposit(ctx, asset, amount, caller)
	if err = s.finish(ctx, "deposit", start, err, slog.String("asset", asset.String()), slog.String("amount", amount.String()), slog.String("caller", caller.String())); err != nil {
		return decimal.Zero, err
	}
	s.LogInfo(ctx, "Deposit completed", slog.String("asset", asset.String()), slog.String("amount", amount.String()), slog.String("balance", balance.String()))
	return balance, nil
}

func (s *vaultService) Withdraw(ctx context.Context, asset domain.AssetID, amount decimal.Decimal, caller domain.Address) (decimal.Decimal, error) {
	start := time.Now()
	balance, err := s.withdraw(ctx, asset, amount, caller)
	if err = s.finish(ctx, "withdraw", start, err, slog.String("asset", asset.String()), slog.String("amount", amount.String()), slog.String("caller", caller.String())); err != nil {
		return decimal.Zero, err
	}
	s.LogInfo(ctx, "Withdrawal completed", slog.String("asset", asset.String()), slog.String("amount", amount.String()), slog.String("balance", balance.String()))
	return balance, nil
}

func (s *vaultService) EmergencyWithdraw(ctx context.Context, asset domain.AssetID, caller domain.Address) (decimal.Decimal, error) {
	start := time.Now()
	amount, err := s.emergencyWithdraw(ctx, asset, caller)
	if err = s.finish(ctx, "emergency_withdraw", start, err, slog.String("asset", asset.String()), slog.String("caller", caller.String())); err != nil {
		return decimal.Zero, err
	}
	s.LogInfo(ctx, "Emergency withdrawal completed", slog.String("asset", asset.String()), slog.String("amount", amount.String()))
	return amount, nil
}

func (s *vaultService) GetMyBalance(ctx context.Context, asset domain.AssetID, caller domain.Address) (decimal.Decimal, error) {
	return s.ownBalance(ctx, asset, caller)
}

func (s *vaultService) Pause(ctx context.Context, caller domain.Address) error {
	start := time.Now()
	return s.finish(ctx, "pause", start, s.setPaused(ctx, true, caller), slog.String("caller", caller.String()))
}

func (s *vaultService) Unpause(ctx context.Context, caller domain.Address) error {
	start := time.Now()
	return s.finish(ctx, "unpause", start, s.setPaused(ctx, false, caller), slog.String("caller", caller.String()))
}

func (s *vaultService) SetDepositLimit(ctx context.Context, asset domain.AssetID, limit decimal.Decimal, caller domain.Address) error {
	start := time.Now()
	err := s.setDepositLimit(ctx, asset, limit, caller)
	return s.finish(ctx, "set_deposit_limit", start, err, slog.String("asset", asset.String()), slog.String("limit", limit.String()))
}

func (s *vaultService) SetDepositLimits(ctx context.Context, assets []domain.AssetID, limits []decimal.Decimal, caller domain.Address) error {
	start := time.Now()
	_, err := s.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := s.AuthorizeCaller(ctx, caller, domain.RoleAdmin); err != nil {
			return err
		}
		if len(assets) != len(limits) {
			return fmt.Errorf("%w: %d assets but %d limits", apperrors.ErrValidation, len(assets), len(limits))
		}
		for i, asset := range assets {
			if err := requireAsset(asset); err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
			if err := domain.ValidateLimit(limits[i]); err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
			s.applyLimit(uow, asset, limits[i], caller)
		}
		return nil
	})
	return s.finish(ctx, "set_deposit_limits", start, err, slog.Int("entries", len(assets)))
}

func (s *vaultService) SetAccountDepositLimit(ctx context.Context, asset domain.AssetID, account domain.Address, limit decimal.Decimal, caller domain.Address) error {
	start := time.Now()
	_, err := s.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := s.AuthorizeCaller(ctx, caller, domain.RoleAdmin); err != nil {
			return err
		}
		if err := requireAsset(asset); err != nil {
			return err
		}
		if account.IsZero() {
			return fmt.Errorf("%w: account is required", apperrors.ErrValidation)
		}
		if err := domain.ValidateLimit(limit); err != nil {
			return err
		}

		overrides, ok := s.accountLimits[asset]
		if !ok {
			overrides = make(map[domain.Address]decimal.Decimal)
			s.accountLimits[asset] = overrides
		}
		previous, existed := overrides[account]
		overrides[account] = limit
		uow.onRollback(func() {
			if existed {
				overrides[account] = previous
				return
			}
			delete(overrides, account)
		})
		uow.emit(domain.AuditEvent{
			Action:     domain.ActionDepositLimitUpdated,
			Actor:      caller,
			Accounts:   []domain.Address{account},
			Asset:      asset,
			Amount:     decPtr(limit),
			Attributes: map[string]string{"previousLimit": previous.String()},
		})
		return nil
	})
	return s.finish(ctx, "set_account_deposit_limit", start, err,
		slog.String("asset", asset.String()), slog.String("account", account.String()), slog.String("limit", limit.String()))
}

func (s *vaultService) SetAssetWhitelisted(ctx context.Context, asset domain.AssetID, allowed bool, caller domain.Address) error {
	start := time.Now()
	_, err := s.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := s.AuthorizeCaller(ctx, caller, domain.RoleAdmin); err != nil {
			return err
		}
		if err := requireAsset(asset); err != nil {
			return err
		}
		previous := s.assetWhitelist[asset]
		s.assetWhitelist[asset] = allowed
		uow.onRollback(func() { s.assetWhitelist[asset] = previous })
		uow.emit(domain.AuditEvent{
			Action:     domain.ActionAssetWhitelistUpdated,
			Actor:      caller,
			Asset:      asset,
			Attributes: map[string]string{"allowed": fmt.Sprint(allowed)},
		})
		return nil
	})
	return s.finish(ctx, "set_asset_whitelisted", start, err, slog.String("asset", asset.String()), slog.Bool("allowed", allowed))
}

// RecoverERC20 only treats an asset as foreign while its deposit limit is zero.
// A tracked asset whose limit was lowered to zero becomes recoverable.
func (s *vaultService) RecoverERC20(ctx context.Context, asset domain.AssetID, amount decimal.Decimal, caller domain.Address) error {
	start := time.Now()
	err := s.recoverForeign(ctx, asset, amount, caller)
	return s.finish(ctx, "recover_erc20", start, err, slog.String("asset", asset.String()), slog.String("amount", amount.String()))
}

func (s *vaultService) ViewBalance(ctx context.Context, asset domain.AssetID, account domain.Address, caller domain.Address) (decimal.Decimal, error) {
	return s.auditBalance(ctx, asset, account, caller)
}

func (s *vaultService) State() domain.PauseState {
	return s.state()
}

func (s *vaultService) TotalDeposited(asset domain.AssetID) decimal.Decimal {
	return s.ledger.TotalOf(asset)
}

func (s *vaultService) DepositLimit(asset domain.AssetID) decimal.Decimal {
	return s.limitOf(asset)
}

func (s *vaultService) IsAssetWhitelisted(asset domain.AssetID) bool {
	return s.assetWhitelist[asset]
}

// Positions lists every asset that has a limit or a whitelist entry, sorted.
func (s *vaultService) Positions() []domain.AssetPosition {
	seen := make(map[domain.AssetID]struct{})
	for asset := range s.limits {
		seen[asset] = struct{}{}
	}
	for asset := range s.assetWhitelist {
		seen[asset] = struct{}{}
	}

	positions := make([]domain.AssetPosition, 0, len(seen))
	for asset := range seen {
		positions = append(positions, domain.AssetPosition{
			Asset:          asset,
			TotalDeposited: s.ledger.TotalOf(asset),
			DepositLimit:   s.limitOf(asset),
			Whitelisted:    s.assetWhitelist[asset],
		})
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].Asset < positions[j].Asset })
	return positions
}
