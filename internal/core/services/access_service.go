package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
)

// defaultRoleAdmins is the administrating role of each role at deployment.
// Admins manage investors and auditors; everything else stays with the super-admin.
var defaultRoleAdmins = map[domain.Role]domain.Role{
	domain.RoleDefaultAdmin: domain.RoleDefaultAdmin,
	domain.RoleAdmin:        domain.RoleDefaultAdmin,
	domain.RoleInvestor:     domain.RoleAdmin,
	domain.RoleAuditor:      domain.RoleAdmin,
	domain.RoleCompliance:   domain.RoleDefaultAdmin,
	domain.RoleRegulator:    domain.RoleDefaultAdmin,
}

// accessService is the access registry. It exclusively owns the grantee set of every role.
type accessService struct {
	BaseService
	ledger  *Ledger
	members map[domain.Role]map[domain.Address]struct{}
	admins  map[domain.Role]domain.Role
}

// Ensure accessService implements the AccessSvcFacade interface
var _ portssvc.AccessSvcFacade = (*accessService)(nil)

// NewAccessService creates the registry and grants the super-admin and admin
// roles to bootstrapAdmin.
func NewAccessService(ctx context.Context, ledger *Ledger, bootstrapAdmin domain.Address, opts ...ServiceOption) (portssvc.AccessSvcFacade, error) {
	if bootstrapAdmin.IsZero() {
		return nil, fmt.Errorf("%w: bootstrap admin is required", apperrors.ErrValidation)
	}
	s := &accessService{
		ledger:  ledger,
		members: make(map[domain.Role]map[domain.Address]struct{}, len(domain.AllRoles)),
		admins:  make(map[domain.Role]domain.Role, len(defaultRoleAdmins)),
	}
	for role, admin := range defaultRoleAdmins {
		s.admins[role] = admin
	}
	s.BaseService = newBaseService(s, opts)

	_, err := ledger.execute(ctx, func(uow *unitOfWork) error {
		s.grant(uow, domain.RoleDefaultAdmin, bootstrapAdmin, bootstrapAdmin)
		s.grant(uow, domain.RoleAdmin, bootstrapAdmin, bootstrapAdmin)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *accessService) HasRole(role domain.Role, account domain.Address) bool {
	_, ok := s.members[role][account]
	return ok
}

func (s *accessService) GetRoleAdmin(role domain.Role) domain.Role {
	return s.admins[role]
}

func (s *accessService) RoleMembers(role domain.Role) []domain.Address {
	members := make([]domain.Address, 0, len(s.members[role]))
	for account := range s.members[role] {
		members = append(members, account)
	}
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
	return members
}

func (s *accessService) GrantRole(ctx context.Context, role domain.Role, account domain.Address, caller domain.Address) error {
	start := time.Now()
	_, err := s.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := s.checkRoleChange(ctx, role, account, caller); err != nil {
			return err
		}
		s.grant(uow, role, account, caller)
		return nil
	})
	return s.finish(ctx, "grant_role", start, err,
		slog.String("role", role.String()), slog.String("account", account.String()), slog.String("caller", caller.String()))
}

func (s *accessService) RevokeRole(ctx context.Context, role domain.Role, account domain.Address, caller domain.Address) error {
	start := time.Now()
	_, err := s.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := s.checkRoleChange(ctx, role, account, caller); err != nil {
			return err
		}
		s.revoke(uow, role, account, caller)
		return nil
	})
	return s.finish(ctx, "revoke_role", start, err,
		slog.String("role", role.String()), slog.String("account", account.String()), slog.String("caller", caller.String()))
}

func (s *accessService) RenounceRole(ctx context.Context, role domain.Role, account domain.Address, caller domain.Address) error {
	start := time.Now()
	_, err := s.ledger.execute(ctx, func(uow *unitOfWork) error {
		if !role.Valid() {
			return fmt.Errorf("%w: unknown role %s", apperrors.ErrValidation, role)
		}
		if caller.IsZero() || account != caller {
			return fmt.Errorf("%w: roles can only be renounced for self", apperrors.ErrUnauthorized)
		}
		s.revoke(uow, role, account, caller)
		return nil
	})
	return s.finish(ctx, "renounce_role", start, err,
		slog.String("role", role.String()), slog.String("caller", caller.String()))
}

func (s *accessService) SetRoleAdmin(ctx context.Context, role domain.Role, adminRole domain.Role, caller domain.Address) error {
	start := time.Now()
	_, err := s.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := s.AuthorizeCaller(ctx, caller, domain.RoleDefaultAdmin); err != nil {
			return err
		}
		if !role.Valid() || !adminRole.Valid() {
			return fmt.Errorf("%w: unknown role", apperrors.ErrValidation)
		}
		previous := s.admins[role]
		s.admins[role] = adminRole
		uow.onRollback(func() { s.admins[role] = previous })
		uow.emit(domain.AuditEvent{
			Action: domain.ActionRoleAdminChanged,
			Actor:  caller,
			Attributes: map[string]string{
				"role":              role.String(),
				"previousAdminRole": previous.String(),
				"newAdminRole":      adminRole.String(),
			},
		})
		return nil
	})
	return s.finish(ctx, "set_role_admin", start, err,
		slog.String("role", role.String()), slog.String("admin_role", adminRole.String()), slog.String("caller", caller.String()))
}

func (s *accessService) checkRoleChange(ctx context.Context, role domain.Role, account domain.Address, caller domain.Address) error {
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %s", apperrors.ErrValidation, role)
	}
	if err := s.AuthorizeCaller(ctx, caller, s.admins[role]); err != nil {
		return err
	}
	if account.IsZero() {
		return fmt.Errorf("%w: account is required", apperrors.ErrValidation)
	}
	return nil
}

// grant adds account to role. Granting a held role changes nothing and emits nothing.
func (s *accessService) grant(uow *unitOfWork, role domain.Role, account, caller domain.Address) {
	if s.HasRole(role, account) {
		return
	}
	set, ok := s.members[role]
	if !ok {
		set = make(map[domain.Address]struct{})
		s.members[role] = set
	}
	set[account] = struct{}{}
	uow.onRollback(func() { delete(set, account) })
	uow.emit(domain.AuditEvent{
		Action:     domain.ActionRoleGranted,
		Actor:      caller,
		Accounts:   []domain.Address{account},
		Attributes: map[string]string{"role": role.String()},
	})
}

// revoke removes account from role. Revoking an unheld role changes nothing and emits nothing.
func (s *accessService) revoke(uow *unitOfWork, role domain.Role, account, caller domain.Address) {
	if !s.HasRole(role, account) {
		return
	}
	set := s.members[role]
	delete(set, account)
	uow.onRollback(func() { set[account] = struct{}{} })
	uow.emit(domain.AuditEvent{
		Action:     domain.ActionRoleRevoked,
		Actor:      caller,
		Accounts:   []domain.Address{account},
		Attributes: map[string]string{"role": role.String()},
	})
}
