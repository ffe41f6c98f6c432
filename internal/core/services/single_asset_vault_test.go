package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
	"github.com/SscSPs/securities_vault/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type SingleAssetVaultTestSuite struct {
	suite.Suite
	ctx   context.Context
	dep   *deployment
	vault portssvc.SingleAssetVaultSvc
}

func (s *SingleAssetVaultTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dep = newDeployment(s.Require())
	s.dep.grant(s.Require(), domain.RoleInvestor, alice)
	s.dep.grant(s.Require(), domain.RoleAuditor, auditor)
	s.vault = services.NewSingleAssetVaultService(s.dep.ledger, s.dep.access, s.dep.gateway, usdc, d(1000))
	s.dep.fund(alice, usdc, d(2000))
}

func TestSingleAssetVaultSuite(t *testing.T) {
	suite.Run(t, new(SingleAssetVaultTestSuite))
}

func (s *SingleAssetVaultTestSuite) TestLifecycle() {
	s.Equal(usdc, s.vault.Asset())

	_, err := s.vault.Deposit(s.ctx, d(400), alice)
	s.Require().NoError(err)
	balance, err := s.vault.Deposit(s.ctx, d(600), alice)
	s.Require().NoError(err)
	s.True(balance.Equal(d(1000)))

	_, err = s.vault.Deposit(s.ctx, d(1), alice)
	s.ErrorIs(err, apperrors.ErrLimitExceeded)

	balance, err = s.vault.Withdraw(s.ctx, d(250), alice)
	s.Require().NoError(err)
	s.True(balance.Equal(d(750)))
	s.True(s.vault.TotalDeposited().Equal(d(750)))

	viewed, err := s.vault.ViewBalance(s.ctx, alice, auditor)
	s.Require().NoError(err)
	s.True(viewed.Equal(d(750)))

	s.Require().NoError(s.vault.Pause(s.ctx, admin))
	amount, err := s.vault.EmergencyWithdraw(s.ctx, alice)
	s.Require().NoError(err)
	s.True(amount.Equal(d(750)))
	s.True(s.dep.gateway.BalanceOf(usdc, alice).Equal(d(2000)))

	mine, err := s.vault.GetMyBalance(s.ctx, alice)
	s.Require().NoError(err)
	s.True(mine.IsZero())
}

func (s *SingleAssetVaultTestSuite) TestNoAssetWhitelist() {
	s.Require().NoError(s.vault.SetDepositLimit(s.ctx, d(10), admin))
	s.True(s.vault.DepositLimit().Equal(d(10)))
	_, err := s.vault.Deposit(s.ctx, d(10), alice)
	s.NoError(err, "the single asset needs no whitelist entry")
}

func (s *SingleAssetVaultTestSuite) TestRecoverRefusesOwnAsset() {
	s.Require().NoError(s.vault.SetDepositLimit(s.ctx, d(0), admin))
	s.ErrorIs(s.vault.RecoverERC20(s.ctx, usdc, d(1), admin), apperrors.ErrValidation,
		"the custodied asset is never recoverable, whatever its limit")

	s.dep.gateway.Mint(dai, custody, d(9))
	s.Require().NoError(s.vault.RecoverERC20(s.ctx, dai, d(9), admin))
	s.True(s.dep.gateway.BalanceOf(dai, admin).Equal(d(9)))
}

func (s *SingleAssetVaultTestSuite) TestPauseState() {
	s.Equal(domain.Active, s.vault.State())
	s.ErrorIs(s.vault.Pause(s.ctx, alice), apperrors.ErrUnauthorized)
	s.Require().NoError(s.vault.Pause(s.ctx, admin))
	_, err := s.vault.Withdraw(s.ctx, d(1), alice)
	s.ErrorIs(err, apperrors.ErrInvalidState)
	s.Require().NoError(s.vault.Unpause(s.ctx, admin))
	s.Equal(domain.Active, s.vault.State())
}
