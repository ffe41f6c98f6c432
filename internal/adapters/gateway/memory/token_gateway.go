// Package memory provides an in-process fungible token ledger implementing
// ports.AssetGateway. It follows approve / transfer / transfer-from semantics
// and is used for local runs and tests.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/SscSPs/securities_vault/internal/core/ports"
	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientFunds     = errors.New("token: transfer amount exceeds balance")
	ErrInsufficientAllowance = errors.New("token: insufficient allowance")
)

// TransferHook runs after a transfer has been applied and before Pull or
// Push returns. The gateway lock is released while it runs, so the hook may
// call back into the vault. A hook error reverts the transfer.
type TransferHook func(ctx context.Context, asset domain.AssetID, from, to domain.Address, amount decimal.Decimal) error

// TokenGateway holds balances and allowances of any number of assets.
// Custody is the account holding the vault's assets.
type TokenGateway struct {
	mu         sync.Mutex
	custody    domain.Address
	balances   map[domain.AssetID]map[domain.Address]decimal.Decimal
	allowances map[domain.AssetID]map[domain.Address]map[domain.Address]decimal.Decimal
	onTransfer TransferHook
}

var _ ports.AssetGateway = (*TokenGateway)(nil)

// Option configures a TokenGateway.
type Option func(*TokenGateway)

// WithTransferHook installs hook on every Pull and Push.
func WithTransferHook(hook TransferHook) Option {
	return func(g *TokenGateway) {
		g.onTransfer = hook
	}
}

func NewTokenGateway(custody domain.Address, opts ...Option) *TokenGateway {
	g := &TokenGateway{
		custody:    custody,
		balances:   make(map[domain.AssetID]map[domain.Address]decimal.Decimal),
		allowances: make(map[domain.AssetID]map[domain.Address]map[domain.Address]decimal.Decimal),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetTransferHook replaces the hook; nil removes it.
func (g *TokenGateway) SetTransferHook(hook TransferHook) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onTransfer = hook
}

// Custody returns the account holding custodied assets.
func (g *TokenGateway) Custody() domain.Address {
	return g.custody
}

// Mint creates amount of asset out of thin air for to.
func (g *TokenGateway) Mint(asset domain.AssetID, to domain.Address, amount decimal.Decimal) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.add(asset, to, amount)
}

// Approve sets the amount spender may pull from owner.
func (g *TokenGateway) Approve(asset domain.AssetID, owner, spender domain.Address, amount decimal.Decimal) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.setAllowance(asset, owner, spender, amount)
}

func (g *TokenGateway) Allowance(asset domain.AssetID, owner, spender domain.Address) decimal.Decimal {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.allowance(asset, owner, spender)
}

func (g *TokenGateway) BalanceOf(asset domain.AssetID, account domain.Address) decimal.Decimal {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.balance(asset, account)
}

// Pull moves amount from the owner into custody, spending the custody allowance.
func (g *TokenGateway) Pull(ctx context.Context, asset domain.AssetID, from domain.Address, amount decimal.Decimal) error {
	g.mu.Lock()
	allowance := g.allowance(asset, from, g.custody)
	if allowance.LessThan(amount) {
		g.mu.Unlock()
		return fmt.Errorf("%w: %s approved %s, pulling %s", ErrInsufficientAllowance, from, allowance.String(), amount.String())
	}
	if err := g.transfer(asset, from, g.custody, amount); err != nil {
		g.mu.Unlock()
		return err
	}
	g.setAllowance(asset, from, g.custody, allowance.Sub(amount))
	hook := g.onTransfer
	g.mu.Unlock()

	if err := g.runHook(ctx, hook, asset, from, g.custody, amount); err != nil {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.revert(asset, from, g.custody, amount)
		g.setAllowance(asset, from, g.custody, g.allowance(asset, from, g.custody).Add(amount))
		return err
	}
	return nil
}

// Push moves amount from custody to the recipient.
func (g *TokenGateway) Push(ctx context.Context, asset domain.AssetID, to domain.Address, amount decimal.Decimal) error {
	g.mu.Lock()
	if err := g.transfer(asset, g.custody, to, amount); err != nil {
		g.mu.Unlock()
		return err
	}
	hook := g.onTransfer
	g.mu.Unlock()

	if err := g.runHook(ctx, hook, asset, g.custody, to, amount); err != nil {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.revert(asset, g.custody, to, amount)
		return err
	}
	return nil
}

func (g *TokenGateway) runHook(ctx context.Context, hook TransferHook, asset domain.AssetID, from, to domain.Address, amount decimal.Decimal) error {
	if hook == nil {
		return nil
	}
	return hook(ctx, asset, from, to, amount)
}

func (g *TokenGateway) transfer(asset domain.AssetID, from, to domain.Address, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("token: amount must be positive, got %s", amount.String())
	}
	if bal := g.balance(asset, from); bal.LessThan(amount) {
		return fmt.Errorf("%w: %s holds %s, sending %s", ErrInsufficientFunds, from, bal.String(), amount.String())
	}
	g.add(asset, from, amount.Neg())
	g.add(asset, to, amount)
	return nil
}

func (g *TokenGateway) revert(asset domain.AssetID, from, to domain.Address, amount decimal.Decimal) {
	g.add(asset, to, amount.Neg())
	g.add(asset, from, amount)
}

func (g *TokenGateway) balance(asset domain.AssetID, account domain.Address) decimal.Decimal {
	return g.balances[asset][account]
}

func (g *TokenGateway) add(asset domain.AssetID, account domain.Address, delta decimal.Decimal) {
	accounts, ok := g.balances[asset]
	if !ok {
		accounts = make(map[domain.Address]decimal.Decimal)
		g.balances[asset] = accounts
	}
	accounts[account] = accounts[account].Add(delta)
}

func (g *TokenGateway) allowance(asset domain.AssetID, owner, spender domain.Address) decimal.Decimal {
	return g.allowances[asset][owner][spender]
}

func (g *TokenGateway) setAllowance(asset domain.AssetID, owner, spender domain.Address, amount decimal.Decimal) {
	owners, ok := g.allowances[asset]
	if !ok {
		owners = make(map[domain.Address]map[domain.Address]decimal.Decimal)
		g.allowances[asset] = owners
	}
	spenders, ok := owners[owner]
	if !ok {
		spenders = make(map[domain.Address]decimal.Decimal)
		owners[owner] = spenders
	}
	spenders[spender] = amount
}
