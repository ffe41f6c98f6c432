package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Access     AccessSvcFacade
	Vault      VaultSvcFacade
	Compliance ComplianceSvcFacade
	Regulator  RegulatorSvc
	Documents  DocumentSvcFacade
	Audit      AuditSvc
	Valuation  ValuationSvc

	// SingleVault is nil when no single-asset vault is deployed
	SingleVault SingleAssetVaultSvc
}
