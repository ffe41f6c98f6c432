package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/securities_vault/internal/adapters/gateway/memory"
	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
	"github.com/SscSPs/securities_vault/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type VaultServiceTestSuite struct {
	suite.Suite
	ctx   context.Context
	dep   *deployment
	vault portssvc.VaultSvcFacade
}

func (s *VaultServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dep = newDeployment(s.Require())
	s.dep.grant(s.Require(), domain.RoleInvestor, alice, bob)
	s.dep.grant(s.Require(), domain.RoleAuditor, auditor)
	s.vault = services.NewVaultService(s.dep.ledger, s.dep.access, s.dep.gateway, []domain.DepositLimitUpdate{
		{Asset: usdc, Limit: d(1000)},
		{Asset: dai, Limit: d(1000)},
	})
	s.dep.fund(alice, usdc, d(5000))
	s.dep.fund(bob, usdc, d(5000))
	s.dep.fund(alice, dai, d(5000))
}

func TestVaultServiceSuite(t *testing.T) {
	suite.Run(t, new(VaultServiceTestSuite))
}

// assertConserved checks that the running total equals the sum of balances
// and that custody holds exactly the running total.
func (s *VaultServiceTestSuite) assertConserved(asset domain.AssetID) {
	sum := decimal.Zero
	for _, holder := range s.dep.ledger.Holders(asset) {
		sum = sum.Add(holder.Amount)
	}
	s.True(sum.Equal(s.vault.TotalDeposited(asset)), "sum of balances %s, total %s", sum, s.vault.TotalDeposited(asset))
	s.True(s.dep.gateway.BalanceOf(asset, custody).Equal(s.vault.TotalDeposited(asset)), "custody holds the running total")
}

func (s *VaultServiceTestSuite) TestDeposit_UpToLimit() {
	balance, err := s.vault.Deposit(s.ctx, usdc, d(400), alice)
	s.Require().NoError(err)
	s.True(balance.Equal(d(400)))

	balance, err = s.vault.Deposit(s.ctx, usdc, d(600), alice)
	s.Require().NoError(err)
	s.True(balance.Equal(d(1000)))

	_, err = s.vault.Deposit(s.ctx, usdc, d(1), alice)
	s.ErrorIs(err, apperrors.ErrLimitExceeded)

	mine, err := s.vault.GetMyBalance(s.ctx, usdc, alice)
	s.Require().NoError(err)
	s.True(mine.Equal(d(1000)))
	s.True(s.dep.gateway.BalanceOf(usdc, alice).Equal(d(4000)))
	s.assertConserved(usdc)
}

func (s *VaultServiceTestSuite) TestWithdraw() {
	_, err := s.vault.Deposit(s.ctx, usdc, d(500), alice)
	s.Require().NoError(err)

	balance, err := s.vault.Withdraw(s.ctx, usdc, d(200), alice)
	s.Require().NoError(err)
	s.True(balance.Equal(d(300)))

	_, err = s.vault.Withdraw(s.ctx, usdc, d(500), alice)
	s.ErrorIs(err, apperrors.ErrInsufficientBalance)

	mine, _ := s.vault.GetMyBalance(s.ctx, usdc, alice)
	s.True(mine.Equal(d(300)), "failed withdrawal leaves the balance unchanged")
	s.True(s.dep.gateway.BalanceOf(usdc, alice).Equal(d(4700)))
	s.assertConserved(usdc)

	event := s.dep.lastEvent(s.Require())
	s.Equal(domain.ActionWithdrawn, event.Action)
	s.Equal(alice, event.Actor)
	s.Equal([]domain.Address{alice}, event.Accounts)
	s.True(event.Amount.Equal(d(200)))
	s.True(event.RunningTotal.Equal(d(300)))
	s.Equal(fixedNow, event.Timestamp)
}

func (s *VaultServiceTestSuite) TestDepositWithdrawRoundTrip() {
	external := s.dep.gateway.BalanceOf(dai, alice)

	_, err := s.vault.Deposit(s.ctx, dai, d(321), alice)
	s.Require().NoError(err)
	balance, err := s.vault.Withdraw(s.ctx, dai, d(321), alice)
	s.Require().NoError(err)

	s.True(balance.IsZero())
	mine, err := s.vault.GetMyBalance(s.ctx, dai, alice)
	s.Require().NoError(err)
	s.True(mine.IsZero())
	s.True(s.dep.gateway.BalanceOf(dai, alice).Equal(external), "external balance is back to its value before the deposit")
	s.True(s.vault.TotalDeposited(dai).IsZero())
	s.assertConserved(dai)
}

func (s *VaultServiceTestSuite) TestEmergencyWithdraw() {
	_, err := s.vault.Deposit(s.ctx, usdc, d(100), alice)
	s.Require().NoError(err)

	_, err = s.vault.EmergencyWithdraw(s.ctx, usdc, alice)
	s.ErrorIs(err, apperrors.ErrInvalidState, "emergency withdrawal needs a paused vault")

	s.Require().NoError(s.vault.Pause(s.ctx, admin))
	s.Equal(domain.Paused, s.vault.State())

	amount, err := s.vault.EmergencyWithdraw(s.ctx, usdc, alice)
	s.Require().NoError(err)
	s.True(amount.Equal(d(100)))
	mine, _ := s.vault.GetMyBalance(s.ctx, usdc, alice)
	s.True(mine.IsZero())
	s.True(s.dep.gateway.BalanceOf(usdc, alice).Equal(d(5000)), "external balance is restored")

	_, err = s.vault.EmergencyWithdraw(s.ctx, usdc, alice)
	s.ErrorIs(err, apperrors.ErrInsufficientBalance)
	s.assertConserved(usdc)
}

func (s *VaultServiceTestSuite) TestPauseGatesOperations() {
	_, err := s.vault.Deposit(s.ctx, usdc, d(50), alice)
	s.Require().NoError(err)
	s.Require().NoError(s.vault.Pause(s.ctx, admin))

	_, err = s.vault.Deposit(s.ctx, usdc, d(1), alice)
	s.ErrorIs(err, apperrors.ErrInvalidState)
	_, err = s.vault.Withdraw(s.ctx, usdc, d(1), alice)
	s.ErrorIs(err, apperrors.ErrInvalidState)
	s.ErrorIs(s.vault.Pause(s.ctx, admin), apperrors.ErrInvalidState, "pausing twice is rejected")

	s.Require().NoError(s.vault.Unpause(s.ctx, admin))
	s.Equal(domain.Active, s.vault.State())
	s.ErrorIs(s.vault.Unpause(s.ctx, admin), apperrors.ErrInvalidState)

	_, err = s.vault.Withdraw(s.ctx, usdc, d(50), alice)
	s.NoError(err)
}

func (s *VaultServiceTestSuite) TestRoleChecks() {
	_, err := s.vault.Deposit(s.ctx, usdc, d(1), stranger)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	_, err = s.vault.Withdraw(s.ctx, usdc, d(1), stranger)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	_, err = s.vault.GetMyBalance(s.ctx, usdc, stranger)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.ErrorIs(s.vault.Pause(s.ctx, alice), apperrors.ErrUnauthorized)
	s.ErrorIs(s.vault.SetDepositLimit(s.ctx, usdc, d(1), alice), apperrors.ErrUnauthorized)
	s.ErrorIs(s.vault.RecoverERC20(s.ctx, foreign, d(1), alice), apperrors.ErrUnauthorized)

	_, err = s.vault.ViewBalance(s.ctx, usdc, alice, bob)
	s.ErrorIs(err, apperrors.ErrUnauthorized, "investors cannot read other balances")

	_, err = s.vault.Deposit(s.ctx, usdc, d(70), alice)
	s.Require().NoError(err)
	balance, err := s.vault.ViewBalance(s.ctx, usdc, alice, auditor)
	s.Require().NoError(err)
	s.True(balance.Equal(d(70)))
}

func (s *VaultServiceTestSuite) TestDepositValidation() {
	before := s.dep.ledger.AuditLog().Len()
	_, err := s.vault.Deposit(s.ctx, usdc, decimal.Zero, alice)
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.vault.Deposit(s.ctx, usdc, d(-5), alice)
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.vault.Deposit(s.ctx, usdc, decimal.RequireFromString("1.5"), alice)
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.vault.Deposit(s.ctx, domain.ZeroAddress, d(1), alice)
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.vault.Deposit(s.ctx, foreign, d(1), alice)
	s.ErrorIs(err, apperrors.ErrAssetNotWhitelisted)
	s.Equal(before, s.dep.ledger.AuditLog().Len(), "rejected deposits record nothing")
}

func (s *VaultServiceTestSuite) TestGatewayFailureRollsBack() {
	s.dep.gateway.Approve(usdc, alice, custody, d(10))
	before := s.dep.ledger.AuditLog().Len()

	_, err := s.vault.Deposit(s.ctx, usdc, d(20), alice)
	s.ErrorIs(err, apperrors.ErrGateway)
	s.ErrorIs(err, memory.ErrInsufficientAllowance)

	mine, _ := s.vault.GetMyBalance(s.ctx, usdc, alice)
	s.True(mine.IsZero())
	s.True(s.vault.TotalDeposited(usdc).IsZero())
	s.Equal(before, s.dep.ledger.AuditLog().Len(), "no event for a failed deposit")
	s.assertConserved(usdc)
}

func (s *VaultServiceTestSuite) TestReentrantWithdrawIsRejected() {
	_, err := s.vault.Deposit(s.ctx, usdc, d(300), alice)
	s.Require().NoError(err)

	var nested error
	s.dep.gateway.SetTransferHook(func(ctx context.Context, asset domain.AssetID, from, to domain.Address, amount decimal.Decimal) error {
		_, nested = s.vault.Withdraw(ctx, asset, amount, to)
		return nested
	})

	_, err = s.vault.Withdraw(s.ctx, usdc, d(100), alice)
	s.ErrorIs(nested, apperrors.ErrReentrancy)
	s.ErrorIs(err, apperrors.ErrGateway)
	s.ErrorIs(err, apperrors.ErrReentrancy)

	s.dep.gateway.SetTransferHook(nil)
	mine, _ := s.vault.GetMyBalance(s.ctx, usdc, alice)
	s.True(mine.Equal(d(300)), "the outer withdrawal was undone")
	s.assertConserved(usdc)

	_, err = s.vault.Withdraw(s.ctx, usdc, d(100), alice)
	s.NoError(err, "the lock is released after a failed operation")
}

func (s *VaultServiceTestSuite) TestAccountDepositLimitOverride() {
	s.Require().NoError(s.vault.SetAccountDepositLimit(s.ctx, usdc, bob, d(50), admin))

	_, err := s.vault.Deposit(s.ctx, usdc, d(51), bob)
	s.ErrorIs(err, apperrors.ErrLimitExceeded)
	_, err = s.vault.Deposit(s.ctx, usdc, d(51), alice)
	s.NoError(err, "other accounts keep the asset limit")

	s.ErrorIs(s.vault.SetAccountDepositLimit(s.ctx, usdc, domain.ZeroAddress, d(5), admin), apperrors.ErrValidation)
}

func (s *VaultServiceTestSuite) TestLowerLimitBelowBalance() {
	_, err := s.vault.Deposit(s.ctx, usdc, d(800), alice)
	s.Require().NoError(err)
	s.Require().NoError(s.vault.SetDepositLimit(s.ctx, usdc, d(500), admin))

	_, err = s.vault.Deposit(s.ctx, usdc, d(1), alice)
	s.ErrorIs(err, apperrors.ErrLimitExceeded)
	_, err = s.vault.Withdraw(s.ctx, usdc, d(800), alice)
	s.NoError(err, "existing balances stay withdrawable")

	event := s.dep.lastEvent(s.Require())
	s.Equal(domain.ActionWithdrawn, event.Action)
	s.ErrorIs(s.vault.SetDepositLimit(s.ctx, usdc, d(-1), admin), apperrors.ErrValidation)
}

func (s *VaultServiceTestSuite) TestSetDepositLimitsIsAtomic() {
	before := s.dep.ledger.AuditLog().Len()

	err := s.vault.SetDepositLimits(s.ctx, []domain.AssetID{usdc, dai}, []decimal.Decimal{d(10)}, admin)
	s.ErrorIs(err, apperrors.ErrValidation, "length mismatch")

	err = s.vault.SetDepositLimits(s.ctx, []domain.AssetID{usdc, domain.ZeroAddress}, []decimal.Decimal{d(10), d(20)}, admin)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.True(s.vault.DepositLimit(usdc).Equal(d(1000)), "earlier entries are rolled back")
	s.Equal(before, s.dep.ledger.AuditLog().Len())

	s.Require().NoError(s.vault.SetDepositLimits(s.ctx, []domain.AssetID{usdc, dai}, []decimal.Decimal{d(10), d(20)}, admin))
	s.True(s.vault.DepositLimit(usdc).Equal(d(10)))
	s.True(s.vault.DepositLimit(dai).Equal(d(20)))
	s.Equal(before+2, s.dep.ledger.AuditLog().Len(), "one event per entry")
}

func (s *VaultServiceTestSuite) TestAssetWhitelist() {
	s.Require().NoError(s.vault.SetAssetWhitelisted(s.ctx, dai, false, admin))
	s.False(s.vault.IsAssetWhitelisted(dai))
	_, err := s.vault.Deposit(s.ctx, dai, d(1), alice)
	s.ErrorIs(err, apperrors.ErrCompliance)

	positions := s.vault.Positions()
	s.Require().Len(positions, 2)
	s.Equal(usdc, positions[0].Asset)
	s.Equal(dai, positions[1].Asset)
	s.False(positions[1].Whitelisted)
}

func (s *VaultServiceTestSuite) TestRecoverERC20() {
	s.dep.gateway.Mint(foreign, custody, d(42))

	err := s.vault.RecoverERC20(s.ctx, usdc, d(1), admin)
	s.ErrorIs(err, apperrors.ErrValidation, "a tracked asset with a limit is not recoverable")

	s.Require().NoError(s.vault.RecoverERC20(s.ctx, foreign, d(42), admin))
	s.True(s.dep.gateway.BalanceOf(foreign, admin).Equal(d(42)))
	event := s.dep.lastEvent(s.Require())
	s.Equal(domain.ActionTokensRecovered, event.Action)

	err = s.vault.RecoverERC20(s.ctx, foreign, d(1), admin)
	s.ErrorIs(err, apperrors.ErrGateway)
	s.True(errors.Is(err, memory.ErrInsufficientFunds))
}
