package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/SscSPs/securities_vault/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AccessServiceTestSuite struct {
	suite.Suite
	ctx context.Context
	dep *deployment
}

func (s *AccessServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dep = newDeployment(s.Require())
}

func TestAccessServiceSuite(t *testing.T) {
	suite.Run(t, new(AccessServiceTestSuite))
}

func (s *AccessServiceTestSuite) TestBootstrap() {
	s.True(s.dep.access.HasRole(domain.RoleDefaultAdmin, admin))
	s.True(s.dep.access.HasRole(domain.RoleAdmin, admin))
	s.False(s.dep.access.HasRole(domain.RoleInvestor, admin))
	s.Equal(domain.RoleAdmin, s.dep.access.GetRoleAdmin(domain.RoleInvestor))
	s.Equal(domain.RoleDefaultAdmin, s.dep.access.GetRoleAdmin(domain.RoleRegulator))
	s.Equal(2, s.dep.ledger.AuditLog().Len(), "bootstrap grants are recorded")
}

func TestNewAccessService_RequiresAdmin(t *testing.T) {
	_, err := services.NewAccessService(context.Background(), services.NewLedger(), domain.ZeroAddress)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func (s *AccessServiceTestSuite) TestGrantAndRevoke() {
	s.Require().NoError(s.dep.access.GrantRole(s.ctx, domain.RoleInvestor, alice, admin))
	s.True(s.dep.access.HasRole(domain.RoleInvestor, alice))

	event := s.dep.lastEvent(s.Require())
	s.Equal(domain.ActionRoleGranted, event.Action)
	s.Equal(admin, event.Actor)
	s.Equal("INVESTOR", event.Attributes["role"])

	before := s.dep.ledger.AuditLog().Len()
	s.Require().NoError(s.dep.access.GrantRole(s.ctx, domain.RoleInvestor, alice, admin))
	s.Equal(before, s.dep.ledger.AuditLog().Len(), "granting a held role emits nothing")

	s.Require().NoError(s.dep.access.RevokeRole(s.ctx, domain.RoleInvestor, alice, admin))
	s.False(s.dep.access.HasRole(domain.RoleInvestor, alice))
	s.Equal(domain.ActionRoleRevoked, s.dep.lastEvent(s.Require()).Action)
}

func (s *AccessServiceTestSuite) TestGrantRequiresRoleAdmin() {
	s.dep.grant(s.Require(), domain.RoleAdmin, bob)

	err := s.dep.access.GrantRole(s.ctx, domain.RoleInvestor, alice, carol)
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	s.NoError(s.dep.access.GrantRole(s.ctx, domain.RoleInvestor, alice, bob), "admins manage investors")
	s.ErrorIs(s.dep.access.GrantRole(s.ctx, domain.RoleRegulator, alice, bob), apperrors.ErrUnauthorized,
		"only the super-admin manages regulators")

	s.ErrorIs(s.dep.access.GrantRole(s.ctx, domain.Role(99), alice, admin), apperrors.ErrValidation)
	s.ErrorIs(s.dep.access.GrantRole(s.ctx, domain.RoleInvestor, domain.ZeroAddress, admin), apperrors.ErrValidation)
}

func (s *AccessServiceTestSuite) TestRenounceRole() {
	s.dep.grant(s.Require(), domain.RoleAuditor, alice)

	s.ErrorIs(s.dep.access.RenounceRole(s.ctx, domain.RoleAuditor, alice, bob), apperrors.ErrUnauthorized)
	s.Require().NoError(s.dep.access.RenounceRole(s.ctx, domain.RoleAuditor, alice, alice))
	s.False(s.dep.access.HasRole(domain.RoleAuditor, alice))
}

func (s *AccessServiceTestSuite) TestSetRoleAdmin() {
	s.dep.grant(s.Require(), domain.RoleCompliance, officer)
	s.ErrorIs(s.dep.access.SetRoleAdmin(s.ctx, domain.RoleInvestor, domain.RoleCompliance, officer), apperrors.ErrUnauthorized)

	s.Require().NoError(s.dep.access.SetRoleAdmin(s.ctx, domain.RoleInvestor, domain.RoleCompliance, admin))
	s.Equal(domain.RoleCompliance, s.dep.access.GetRoleAdmin(domain.RoleInvestor))

	event := s.dep.lastEvent(s.Require())
	s.Equal(domain.ActionRoleAdminChanged, event.Action)
	s.Equal("ADMIN", event.Attributes["previousAdminRole"])
	s.Equal("COMPLIANCE", event.Attributes["newAdminRole"])

	s.NoError(s.dep.access.GrantRole(s.ctx, domain.RoleInvestor, alice, officer))
	s.ErrorIs(s.dep.access.GrantRole(s.ctx, domain.RoleInvestor, bob, admin), apperrors.ErrUnauthorized,
		"admin no longer administers investors")
}

func (s *AccessServiceTestSuite) TestRoleMembersSorted() {
	s.dep.grant(s.Require(), domain.RoleInvestor, carol, alice, bob)
	s.Equal([]domain.Address{alice, bob, carol}, s.dep.access.RoleMembers(domain.RoleInvestor))
	s.Empty(s.dep.access.RoleMembers(domain.RoleRegulator))
}
