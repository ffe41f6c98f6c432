package dto

import (
	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DepositRequest defines the data needed to deposit or withdraw an asset.
type DepositRequest struct {
	Asset  string          `json:"asset" binding:"required,eth_addr"`
	Amount decimal.Decimal `json:"amount"` // Whole base units, validated by the service
}

// WithdrawRequest has the same shape as a deposit.
type WithdrawRequest = DepositRequest

// EmergencyWithdrawRequest names the asset whose whole balance is returned.
type EmergencyWithdrawRequest struct {
	Asset string `json:"asset" binding:"required,eth_addr"`
}

// BalanceResponse defines the data returned for a balance query.
type BalanceResponse struct {
	Asset   domain.AssetID  `json:"asset"`
	Account domain.Address  `json:"account"`
	Balance decimal.Decimal `json:"balance"`
}

// SetDepositLimitRequest replaces the per-account cap of one asset.
type SetDepositLimitRequest struct {
	Asset string          `json:"asset" binding:"required,eth_addr"`
	Limit decimal.Decimal `json:"limit"`
}

// SetDepositLimitsRequest carries parallel arrays applied as one batch.
// Length mismatches are rejected by the service, not by binding.
type SetDepositLimitsRequest struct {
	Assets []string          `json:"assets" binding:"required,dive,eth_addr"`
	Limits []decimal.Decimal `json:"limits" binding:"required"`
}

// SetAccountDepositLimitRequest overrides the cap of one asset for one account.
type SetAccountDepositLimitRequest struct {
	Asset   string          `json:"asset" binding:"required,eth_addr"`
	Account string          `json:"account" binding:"required,eth_addr"`
	Limit   decimal.Decimal `json:"limit"`
}

// SetAssetWhitelistedRequest allows or forbids deposits of an asset.
type SetAssetWhitelistedRequest struct {
	Asset   string `json:"asset" binding:"required,eth_addr"`
	Allowed *bool  `json:"allowed" binding:"required"` // Pointer so that false is distinguishable from missing
}

// RecoverTokensRequest names a foreign asset to send back to the caller.
type RecoverTokensRequest struct {
	Asset  string          `json:"asset" binding:"required,eth_addr"`
	Amount decimal.Decimal `json:"amount"`
}

// VaultStateResponse defines the public view of the multi-asset vault.
type VaultStateResponse struct {
	State     domain.PauseState      `json:"state"`
	Positions []domain.AssetPosition `json:"positions"`
}

// SingleVaultAmountRequest is the body of single-asset deposits and withdrawals.
type SingleVaultAmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// SingleVaultLimitRequest replaces the limit of the single-asset vault.
type SingleVaultLimitRequest struct {
	Limit decimal.Decimal `json:"limit"`
}

// SingleVaultStateResponse defines the public view of the single-asset vault.
type SingleVaultStateResponse struct {
	Asset          domain.AssetID    `json:"asset"`
	State          domain.PauseState `json:"state"`
	TotalDeposited decimal.Decimal   `json:"totalDeposited"`
	DepositLimit   decimal.Decimal   `json:"depositLimit"`
}

// ValuationResponse defines the total value locked and its breakdown.
type ValuationResponse struct {
	TotalValueLocked decimal.Decimal         `json:"totalValueLocked"`
	Assets           []domain.AssetValuation `json:"assets"`
}
