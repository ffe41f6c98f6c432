package services

import (
	"context"

	"github.com/SscSPs/securities_vault/internal/core/ports"
	portsrepo "github.com/SscSPs/securities_vault/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
	"github.com/SscSPs/securities_vault/internal/platform/config"
	"github.com/SscSPs/securities_vault/internal/platform/metrics"
)

// Dependencies groups the collaborators the services need besides configuration.
type Dependencies struct {
	Gateway ports.AssetGateway
	Oracle  ports.PriceOracle
	Metrics *metrics.Metrics
	Repos   portsrepo.RepositoryProvider
	Ledger  []LedgerOption
}

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The vault, the security token, the regulator and the document registry share
// one ledger; the single-asset vault gets its own ledger committing into the same audit log.
// Both vaults push from the one gateway custody account.
func NewServiceContainer(ctx context.Context, cfg *config.Config, deps Dependencies) (*portssvc.ServiceContainer, *AuditLog, error) {
	if err := cfg.CheckAssetsDistinct(); err != nil {
		return nil, nil, err
	}

	ledger := NewLedger(deps.Ledger...)
	opts := []ServiceOption{WithMetrics(deps.Metrics)}
	vaultOpts := append(append([]ServiceOption{}, opts...), WithCustody(NewCustody()))

	// Initialize the access registry first since every other service depends on it
	access, err := NewAccessService(ctx, ledger, cfg.BootstrapAdmin, opts...)
	if err != nil {
		return nil, nil, err
	}

	container := &portssvc.ServiceContainer{Access: access}
	container.Vault = NewVaultService(ledger, access, deps.Gateway, cfg.VaultAssets, vaultOpts...)
	container.Compliance = NewComplianceService(ledger, access, cfg.SecurityTokenAsset, cfg.DefaultPartition, opts...)
	container.Regulator = NewRegulatorService(ledger, access, cfg.SecurityTokenAsset, opts...)
	container.Documents = NewDocumentService(ledger, access, opts...)
	container.Valuation = NewValuationService(container.Vault, deps.Oracle, opts...)

	var history portsrepo.AuditEventReader
	if deps.Repos.AuditRepo != nil {
		history = deps.Repos.AuditRepo
	}
	container.Audit = NewAuditService(ledger.AuditLog(), access, history, opts...)

	if !cfg.SingleVaultAsset.IsZero() {
		singleOpts := append(append([]LedgerOption{}, deps.Ledger...), WithAuditLog(ledger.AuditLog()))
		singleLedger := NewLedger(singleOpts...)
		container.SingleVault = NewSingleAssetVaultService(singleLedger, access, deps.Gateway, cfg.SingleVaultAsset, cfg.SingleVaultLimit, vaultOpts...)
	}

	return container, ledger.AuditLog(), nil
}
