package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/securities_vault/internal/adapters/gateway/memory"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
	"github.com/SscSPs/securities_vault/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	admin      domain.Address = "0x00000000000000000000000000000000000000a1"
	auditor    domain.Address = "0x00000000000000000000000000000000000000a2"
	officer    domain.Address = "0x00000000000000000000000000000000000000a3"
	regulator  domain.Address = "0x00000000000000000000000000000000000000a4"
	custody    domain.Address = "0x00000000000000000000000000000000000000c0"
	alice      domain.Address = "0x0000000000000000000000000000000000000001"
	bob        domain.Address = "0x0000000000000000000000000000000000000002"
	carol      domain.Address = "0x0000000000000000000000000000000000000003"
	stranger   domain.Address = "0x0000000000000000000000000000000000000bad"
	usdc       domain.AssetID = "0x000000000000000000000000000000000000aaaa"
	dai        domain.AssetID = "0x000000000000000000000000000000000000bbbb"
	foreign    domain.AssetID = "0x000000000000000000000000000000000000ffff"
	tokenAsset domain.AssetID = "0x00000000000000000000000000000000000000f0"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// deployment is one ledger with its access registry and an in-memory token gateway.
type deployment struct {
	ledger  *services.Ledger
	access  portssvc.AccessSvcFacade
	gateway *memory.TokenGateway
}

func newDeployment(r *require.Assertions) *deployment {
	ledger := services.NewLedger(services.WithClock(func() time.Time { return fixedNow }))
	access, err := services.NewAccessService(context.Background(), ledger, admin)
	r.NoError(err)
	return &deployment{
		ledger:  ledger,
		access:  access,
		gateway: memory.NewTokenGateway(custody),
	}
}

func (dep *deployment) grant(r *require.Assertions, role domain.Role, accounts ...domain.Address) {
	for _, account := range accounts {
		r.NoError(dep.access.GrantRole(context.Background(), role, account, admin))
	}
}

// fund mints amount of asset to account and approves custody to pull all of it.
func (dep *deployment) fund(account domain.Address, asset domain.AssetID, amount decimal.Decimal) {
	dep.gateway.Mint(asset, account, amount)
	dep.gateway.Approve(asset, account, custody, amount)
}

func (dep *deployment) lastEvent(r *require.Assertions) domain.AuditEvent {
	log := dep.ledger.AuditLog()
	events := log.Since(log.LastSequence()-1, 1)
	r.Len(events, 1)
	return events[0]
}
