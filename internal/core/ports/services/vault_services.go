package services

import (
	"context"

	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VaultInvestorSvc defines the investor-facing custody operations of the multi-asset vault
type VaultInvestorSvc interface {
	// Deposit pulls amount of asset from the caller into custody and returns the new balance.
	Deposit(ctx context.Context, asset domain.AssetID, amount decimal.Decimal, caller domain.Address) (decimal.Decimal, error)

	// Withdraw pushes amount of asset from custody to the caller and returns the new balance.
	Withdraw(ctx context.Context, asset domain.AssetID, amount decimal.Decimal, caller domain.Address) (decimal.Decimal, error)

	// EmergencyWithdraw returns the caller's whole balance of asset while the vault is paused.
	EmergencyWithdraw(ctx context.Context, asset domain.AssetID, caller domain.Address) (decimal.Decimal, error)

	// GetMyBalance returns the caller's own balance of asset.
	GetMyBalance(ctx context.Context, asset domain.AssetID, caller domain.Address) (decimal.Decimal, error)
}

// VaultAdminSvc defines the administrative operations of the multi-asset vault
type VaultAdminSvc interface {
	Pause(ctx context.Context, caller domain.Address) error
	Unpause(ctx context.Context, caller domain.Address) error

	// SetDepositLimit replaces the per-account cap of asset.
	SetDepositLimit(ctx context.Context, asset domain.AssetID, limit decimal.Decimal, caller domain.Address) error

	// SetDepositLimits applies every (asset, limit) pair or none of them.
	SetDepositLimits(ctx context.Context, assets []domain.AssetID, limits []decimal.Decimal, caller domain.Address) error

	// SetAccountDepositLimit overrides the cap of asset for one account.
	SetAccountDepositLimit(ctx context.Context, asset domain.AssetID, account domain.Address, limit decimal.Decimal, caller domain.Address) error

	// SetAssetWhitelisted allows or forbids deposits of asset.
	SetAssetWhitelisted(ctx context.Context, asset domain.AssetID, allowed bool, caller domain.Address) error

	// RecoverERC20 sends amount of a foreign asset held in custody to the caller.
	RecoverERC20(ctx context.Context, asset domain.AssetID, amount decimal.Decimal, caller domain.Address) error
}

// VaultReaderSvc defines read-only views of the multi-asset vault
type VaultReaderSvc interface {
	// ViewBalance returns the balance of account. Auditor only.
	ViewBalance(ctx context.Context, asset domain.AssetID, account domain.Address, caller domain.Address) (decimal.Decimal, error)

	State() domain.PauseState
	TotalDeposited(asset domain.AssetID) decimal.Decimal
	DepositLimit(asset domain.AssetID) decimal.Decimal
	IsAssetWhitelisted(asset domain.AssetID) bool
	Positions() []domain.AssetPosition
}

// VaultSvcFacade combines all multi-asset vault interfaces
type VaultSvcFacade interface {
	VaultInvestorSvc
	VaultAdminSvc
	VaultReaderSvc
}

// SingleAssetVaultSvc is the single-asset variant: the asset is fixed at construction.
type SingleAssetVaultSvc interface {
	Asset() domain.AssetID
	Deposit(ctx context.Context, amount decimal.Decimal, caller domain.Address) (decimal.Decimal, error)
	Withdraw(ctx context.Context, amount decimal.Decimal, caller domain.Address) (decimal.Decimal, error)
	EmergencyWithdraw(ctx context.Context, caller domain.Address) (decimal.Decimal, error)
	GetMyBalance(ctx context.Context, caller domain.Address) (decimal.Decimal, error)
	ViewBalance(ctx context.Context, account domain.Address, caller domain.Address) (decimal.Decimal, error)
	Pause(ctx context.Context, caller domain.Address) error
	Unpause(ctx context.Context, caller domain.Address) error
	SetDepositLimit(ctx context.Context, limit decimal.Decimal, caller domain.Address) error
	RecoverERC20(ctx context.Context, asset domain.AssetID, amount decimal.Decimal, caller domain.Address) error
	State() domain.PauseState
	TotalDeposited() decimal.Decimal
	DepositLimit() decimal.Decimal
}
