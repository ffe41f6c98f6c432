package dto

import "github.com/SscSPs/securities_vault/internal/core/domain"

// RoleRequest grants, revokes or renounces one role for one account.
type RoleRequest struct {
	Role    domain.Role `json:"role" binding:"required"`
	Account string      `json:"account" binding:"required,eth_addr"`
}

// SetRoleAdminRequest changes which role administers another.
type SetRoleAdminRequest struct {
	Role      domain.Role `json:"role" binding:"required"`
	AdminRole domain.Role `json:"adminRole" binding:"required"`
}

// RoleMembersResponse lists the holders of a role.
type RoleMembersResponse struct {
	Role      domain.Role      `json:"role"`
	AdminRole domain.Role      `json:"adminRole"`
	Members   []domain.Address `json:"members"`
}

// CallerRolesResponse lists the roles held by the authenticated caller.
type CallerRolesResponse struct {
	Account domain.Address `json:"account"`
	Roles   []domain.Role  `json:"roles"`
}
