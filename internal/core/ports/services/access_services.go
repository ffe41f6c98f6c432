package services

import (
	"context"

	"github.com/SscSPs/securities_vault/internal/core/domain"
)

// AccessReaderSvc defines read operations on role grants
type AccessReaderSvc interface {
	// HasRole reports whether account currently holds role.
	HasRole(role domain.Role, account domain.Address) bool

	// GetRoleAdmin returns the role whose holders may grant and revoke role.
	GetRoleAdmin(role domain.Role) domain.Role

	// RoleMembers lists the accounts holding role, sorted.
	RoleMembers(role domain.Role) []domain.Address
}

// AccessWriterSvc defines operations that change role grants
type AccessWriterSvc interface {
	// GrantRole gives role to account. Granting a held role is a no-op.
	GrantRole(ctx context.Context, role domain.Role, account domain.Address, caller domain.Address) error

	// RevokeRole removes role from account. Revoking an unheld role is a no-op.
	RevokeRole(ctx context.Context, role domain.Role, account domain.Address, caller domain.Address) error

	// RenounceRole lets the caller drop one of its own roles.
	RenounceRole(ctx context.Context, role domain.Role, account domain.Address, caller domain.Address) error

	// SetRoleAdmin changes the administrating role of role. Super-admin only.
	SetRoleAdmin(ctx context.Context, role domain.Role, adminRole domain.Role, caller domain.Address) error
}

// AccessSvcFacade combines all access registry interfaces
type AccessSvcFacade interface {
	AccessReaderSvc
	AccessWriterSvc
}
