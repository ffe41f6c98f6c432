package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Ledger is the single balance store of a deployment. It owns every
// per-(asset, account) balance and the running total of each asset, the
// execution lock, and the audit log. Services mutate balances only through
// the unexported credit, debit and move entry points inside execute.
type Ledger struct {
	balances map[domain.AssetID]map[domain.Address]decimal.Decimal
	totals   map[domain.AssetID]decimal.Decimal
	lock     executionLock
	audit    *AuditLog
	now      func() time.Time
}

// LedgerOption configures a Ledger.
type LedgerOption func(*Ledger)

// WithClock replaces the time source used for audit and document timestamps.
func WithClock(now func() time.Time) LedgerOption {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithAuditLog makes the ledger commit into an existing audit log.
func WithAuditLog(log *AuditLog) LedgerOption {
	return func(l *Ledger) {
		l.audit = log
	}
}

// NewLedger creates an empty ledger.
func NewLedger(opts ...LedgerOption) *Ledger {
	l := &Ledger{
		balances: make(map[domain.AssetID]map[domain.Address]decimal.Decimal),
		totals:   make(map[domain.AssetID]decimal.Decimal),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.audit == nil {
		l.audit = NewAuditLog()
	}
	return l
}

// AuditLog returns the log this ledger commits into.
func (l *Ledger) AuditLog() *AuditLog {
	return l.audit
}

// BalanceOf returns the balance of account in asset. Missing entries are zero.
func (l *Ledger) BalanceOf(asset domain.AssetID, account domain.Address) decimal.Decimal {
	if accounts, ok := l.balances[asset]; ok {
		if bal, ok := accounts[account]; ok {
			return bal
		}
	}
	return decimal.Zero
}

// TotalOf returns the running total of asset.
func (l *Ledger) TotalOf(asset domain.AssetID) decimal.Decimal {
	if total, ok := l.totals[asset]; ok {
		return total
	}
	return decimal.Zero
}

// Holders lists every non-zero balance of asset, sorted by account.
func (l *Ledger) Holders(asset domain.AssetID) []domain.Balance {
	accounts := l.balances[asset]
	holders := make([]domain.Balance, 0, len(accounts))
	for account, amount := range accounts {
		holders = append(holders, domain.Balance{Asset: asset, Account: account, Amount: amount})
	}
	sort.Slice(holders, func(i, j int) bool { return holders[i].Account < holders[j].Account })
	return holders
}

// Assets lists every asset that has ever carried a running total, sorted.
func (l *Ledger) Assets() []domain.AssetID {
	assets := make([]domain.AssetID, 0, len(l.totals))
	for asset := range l.totals {
		assets = append(assets, asset)
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i] < assets[j] })
	return assets
}

// execute runs op as one atomic unit under the execution lock. If op fails
// or panics every mutation it recorded is undone and no event is committed.
// On success the staged events are committed and returned.
func (l *Ledger) execute(ctx context.Context, op func(uow *unitOfWork) error) (committed []domain.AuditEvent, err error) {
	if err := l.lock.enter(); err != nil {
		return nil, err
	}
	defer l.lock.exit()

	uow := &unitOfWork{}
	defer func() {
		if r := recover(); r != nil {
			uow.rollback()
			panic(r)
		}
	}()

	if err := op(uow); err != nil {
		uow.rollback()
		return nil, err
	}
	return l.audit.append(l.now(), uow.commit()...), nil
}

// setBalance writes a balance and keeps the map free of zero entries.
func (l *Ledger) setBalance(asset domain.AssetID, account domain.Address, amount decimal.Decimal) {
	accounts, ok := l.balances[asset]
	if !ok {
		accounts = make(map[domain.Address]decimal.Decimal)
		l.balances[asset] = accounts
	}
	if amount.IsZero() {
		delete(accounts, account)
		return
	}
	accounts[account] = amount
}

func (l *Ledger) setTotal(asset domain.AssetID, total decimal.Decimal, existed bool) {
	if !existed {
		delete(l.totals, asset)
		return
	}
	l.totals[asset] = total
}

// credit adds amount to the balance and the running total, returning the new balance.
func (l *Ledger) credit(uow *unitOfWork, asset domain.AssetID, account domain.Address, amount decimal.Decimal) decimal.Decimal {
	prevBalance := l.BalanceOf(asset, account)
	prevTotal, hadTotal := l.totals[asset]

	next := prevBalance.Add(amount)
	l.setBalance(asset, account, next)
	l.totals[asset] = l.TotalOf(asset).Add(amount)

	uow.onRollback(func() {
		l.setBalance(asset, account, prevBalance)
		l.setTotal(asset, prevTotal, hadTotal)
	})
	return next
}

// debit removes amount from the balance and the running total, returning the new balance.
func (l *Ledger) debit(uow *unitOfWork, asset domain.AssetID, account domain.Address, amount decimal.Decimal) (decimal.Decimal, error) {
	prevBalance := l.BalanceOf(asset, account)
	if amount.GreaterThan(prevBalance) {
		return prevBalance, fmt.Errorf("%w: %s holds %s of %s, requested %s",
			apperrors.ErrInsufficientBalance, account, prevBalance.String(), asset, amount.String())
	}
	prevTotal, hadTotal := l.totals[asset]

	next := prevBalance.Sub(amount)
	l.setBalance(asset, account, next)
	l.totals[asset] = l.TotalOf(asset).Sub(amount)

	uow.onRollback(func() {
		l.setBalance(asset, account, prevBalance)
		l.setTotal(asset, prevTotal, hadTotal)
	})
	return next, nil
}

// move transfers amount between two balances of the same asset. The running
// total is unchanged. This is the privileged path shared by the security
// token transfer and the forced transfer; it performs no compliance checks.
func (l *Ledger) move(uow *unitOfWork, asset domain.AssetID, from, to domain.Address, amount decimal.Decimal) error {
	if _, err := l.debit(uow, asset, from, amount); err != nil {
		return err
	}
	l.credit(uow, asset, to, amount)
	return nil
}
