package services

import (
	"context"

	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComplianceAdminSvc defines whitelist and partition management
type ComplianceAdminSvc interface {
	AddToWhitelist(ctx context.Context, account domain.Address, caller domain.Address) error
	RemoveFromWhitelist(ctx context.Context, account domain.Address, caller domain.Address) error
	AssignPartition(ctx context.Context, account domain.Address, partition domain.Partition, caller domain.Address) error

	// Issue mints amount of the security token to a whitelisted account.
	Issue(ctx context.Context, to domain.Address, amount decimal.Decimal, caller domain.Address) error
}

// ComplianceCheckSvc defines the pure admissibility predicates
type ComplianceCheckSvc interface {
	CanTransfer(from, to domain.Address, amount decimal.Decimal) bool
	CanTransferByPartition(partition domain.Partition, from, to domain.Address, amount decimal.Decimal) bool
	Status(account domain.Address) domain.ComplianceStatus
}

// SecurityTokenSvc defines the ordinary transfer path and balances of the security token
type SecurityTokenSvc interface {
	Asset() domain.AssetID
	Transfer(ctx context.Context, to domain.Address, amount decimal.Decimal, caller domain.Address) error
	TransferByPartition(ctx context.Context, partition domain.Partition, to domain.Address, amount decimal.Decimal, caller domain.Address) error
	BalanceOf(account domain.Address) decimal.Decimal
	TotalSupply() decimal.Decimal
}

// ComplianceSvcFacade combines all compliance engine interfaces
type ComplianceSvcFacade interface {
	ComplianceAdminSvc
	ComplianceCheckSvc
	SecurityTokenSvc
}

// RegulatorSvc is the privileged transfer path that bypasses compliance checks.
type RegulatorSvc interface {
	ForceTransfer(ctx context.Context, from, to domain.Address, amount decimal.Decimal, reason string, caller domain.Address) (*domain.AuditEvent, error)
}
