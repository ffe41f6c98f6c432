package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/securities_vault/internal/adapters/gateway/memory"
	"github.com/SscSPs/securities_vault/internal/adapters/oracle/static"
	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
	"github.com/SscSPs/securities_vault/internal/core/services"
	"github.com/SscSPs/securities_vault/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ServiceContainerTestSuite struct {
	suite.Suite
	ctx       context.Context
	cfg       *config.Config
	gateway   *memory.TokenGateway
	container *portssvc.ServiceContainer
}

func (s *ServiceContainerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.cfg = &config.Config{
		BootstrapAdmin:     admin,
		CustodyAddress:     custody,
		SecurityTokenAsset: tokenAsset,
		DefaultPartition:   domain.DefaultPartition,
		VaultAssets:        []domain.DepositLimitUpdate{{Asset: usdc, Limit: d(1000)}},
		SingleVaultAsset:   dai,
		SingleVaultLimit:   d(1000),
	}
	s.gateway = memory.NewTokenGateway(custody)

	var err error
	s.container, _, err = services.NewServiceContainer(s.ctx, s.cfg, services.Dependencies{
		Gateway: s.gateway,
		Oracle:  static.PriceOracle{},
	})
	s.Require().NoError(err)
	s.Require().NotNil(s.container.SingleVault)

	for _, investor := range []domain.Address{alice, bob} {
		s.Require().NoError(s.container.Access.GrantRole(s.ctx, domain.RoleInvestor, investor, admin))
	}
	s.fund(alice, dai, d(500))
	s.fund(bob, usdc, d(500))

	_, err = s.container.SingleVault.Deposit(s.ctx, d(500), alice)
	s.Require().NoError(err)
	_, err = s.container.Vault.Deposit(s.ctx, usdc, d(500), bob)
	s.Require().NoError(err)
}

func TestServiceContainerSuite(t *testing.T) {
	suite.Run(t, new(ServiceContainerTestSuite))
}

func (s *ServiceContainerTestSuite) fund(account domain.Address, asset domain.AssetID, amount decimal.Decimal) {
	s.gateway.Mint(asset, account, amount)
	s.gateway.Approve(asset, account, custody, amount)
}

func (s *ServiceContainerTestSuite) TestVaultCannotRecoverSingleVaultAsset() {
	err := s.container.Vault.RecoverERC20(s.ctx, dai, d(500), admin)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.True(s.gateway.BalanceOf(dai, admin).IsZero())

	_, err = s.container.SingleVault.Withdraw(s.ctx, d(500), alice)
	s.Require().NoError(err)
	s.True(s.gateway.BalanceOf(dai, alice).Equal(d(500)))
}

func (s *ServiceContainerTestSuite) TestSingleVaultCannotRecoverVaultAsset() {
	err := s.container.SingleVault.RecoverERC20(s.ctx, usdc, d(500), admin)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.True(s.gateway.BalanceOf(usdc, admin).IsZero())

	_, err = s.container.Vault.Withdraw(s.ctx, usdc, d(500), bob)
	s.Require().NoError(err)
	s.True(s.gateway.BalanceOf(usdc, bob).Equal(d(500)))
}

func (s *ServiceContainerTestSuite) TestVaultAssetWithZeroLimitStaysProtectedWhileHeld() {
	s.Require().NoError(s.container.Vault.SetDepositLimit(s.ctx, usdc, d(0), admin))

	err := s.container.SingleVault.RecoverERC20(s.ctx, usdc, d(1), admin)
	s.ErrorIs(err, apperrors.ErrValidation, "bob's deposit is still in custody")
}

func (s *ServiceContainerTestSuite) TestForeignAssetIsRecoverable() {
	s.gateway.Mint(foreign, custody, d(7))

	s.Require().NoError(s.container.SingleVault.RecoverERC20(s.ctx, foreign, d(3), admin))
	s.Require().NoError(s.container.Vault.RecoverERC20(s.ctx, foreign, d(4), admin))
	s.True(s.gateway.BalanceOf(foreign, admin).Equal(d(7)))
}

func (s *ServiceContainerTestSuite) TestOverlappingAssetsAreRejected() {
	cfg := *s.cfg
	cfg.SecurityTokenAsset = usdc

	_, _, err := services.NewServiceContainer(s.ctx, &cfg, services.Dependencies{
		Gateway: s.gateway,
		Oracle:  static.PriceOracle{},
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}
