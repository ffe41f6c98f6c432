package dto

import (
	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WhitelistRequest names the account to approve or unapprove.
type WhitelistRequest struct {
	Account string `json:"account" binding:"required,eth_addr"`
}

// AssignPartitionRequest moves a whitelisted account to another partition.
type AssignPartitionRequest struct {
	Account   string `json:"account" binding:"required,eth_addr"`
	Partition string `json:"partition" binding:"required,partition"`
}

// IssueRequest mints security tokens to a whitelisted account.
type IssueRequest struct {
	To     string          `json:"to" binding:"required,eth_addr"`
	Amount decimal.Decimal `json:"amount"`
}

// TransferRequest sends the caller's own tokens. Partition is optional; when
// set, the transfer is restricted to that partition.
type TransferRequest struct {
	To        string          `json:"to" binding:"required,eth_addr"`
	Amount    decimal.Decimal `json:"amount"`
	Partition string          `json:"partition" binding:"omitempty,partition"`
}

// CanTransferParams defines query parameters of the transfer pre-check.
type CanTransferParams struct {
	From      string `form:"from" binding:"required,eth_addr"`
	To        string `form:"to" binding:"required,eth_addr"`
	Amount    string `form:"amount" binding:"required"`
	Partition string `form:"partition" binding:"omitempty,partition"`
}

// CanTransferResponse is the result of the transfer pre-check.
type CanTransferResponse struct {
	Allowed bool `json:"allowed"`
}

// TokenInfoResponse describes the security token.
type TokenInfoResponse struct {
	Asset       domain.AssetID  `json:"asset"`
	TotalSupply decimal.Decimal `json:"totalSupply"`
}

// ForceTransferRequest defines a regulator-ordered transfer.
type ForceTransferRequest struct {
	From   string          `json:"from" binding:"required,eth_addr"`
	To     string          `json:"to" binding:"required,eth_addr"`
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}
