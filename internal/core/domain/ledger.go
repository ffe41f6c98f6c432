package domain

import "github.com/shopspring/decimal"

// PauseState is the operational mode of a vault.
type PauseState string

const (
	Active PauseState = "ACTIVE"
	Paused PauseState = "PAUSED"
)

// DepositLimitUpdate is one entry of a batched limit update.
type DepositLimitUpdate struct {
	Asset AssetID         `json:"asset"`
	Limit decimal.Decimal `json:"limit"`
}

// Balance is the custodied amount of one asset held for one account.
type Balance struct {
	Asset   AssetID         `json:"asset"`
	Account Address         `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

// AssetPosition summarises one vault asset.
type AssetPosition struct {
	Asset          AssetID         `json:"asset"`
	TotalDeposited decimal.Decimal `json:"totalDeposited"`
	DepositLimit   decimal.Decimal `json:"depositLimit"`
	Whitelisted    bool            `json:"whitelisted"`
}

// AssetValuation is the priced contribution of one asset to the total value locked.
type AssetValuation struct {
	Asset          AssetID         `json:"asset"`
	TotalDeposited decimal.Decimal `json:"totalDeposited"`
	Price          decimal.Decimal `json:"price"`
	Value          decimal.Decimal `json:"value"`
}
