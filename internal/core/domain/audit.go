package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditAction names the kind of state change an AuditEvent records.
type AuditAction string

const (
	ActionDeposited             AuditAction = "Deposited"
	ActionWithdrawn             AuditAction = "Withdrawn"
	ActionEmergencyWithdrawal   AuditAction = "EmergencyWithdrawal"
	ActionPaused                AuditAction = "Paused"
	ActionUnpaused              AuditAction = "Unpaused"
	ActionDepositLimitUpdated   AuditAction = "DepositLimitUpdated"
	ActionAssetWhitelistUpdated AuditAction = "AssetWhitelistUpdated"
	ActionTokensRecovered       AuditAction = "TokensRecovered"
	ActionRoleGranted           AuditAction = "RoleGranted"
	ActionRoleRevoked           AuditAction = "RoleRevoked"
	ActionRoleAdminChanged      AuditAction = "RoleAdminChanged"
	ActionAddressWhitelisted    AuditAction = "AddressWhitelisted"
	ActionPartitionAssigned     AuditAction = "PartitionAssigned"
	ActionTransfer              AuditAction = "Transfer"
	ActionTokensIssued          AuditAction = "TokensIssued"
	ActionForcedTransfer        AuditAction = "ForcedTransfer"
	ActionDocumentAdded         AuditAction = "DocumentAdded"
	ActionDocumentRemoved       AuditAction = "DocumentRemoved"
)

// AuditEvent is an immutable record of a state-changing operation.
// Optional fields are left at their zero value when they do not apply.
type AuditEvent struct {
	EventID      string            `json:"eventID"`
	Sequence     uint64            `json:"sequence"`
	Action       AuditAction       `json:"action"`
	Actor        Address           `json:"actor"`
	Accounts     []Address         `json:"accounts,omitempty"`
	Asset        AssetID           `json:"asset,omitempty"`
	Amount       *decimal.Decimal  `json:"amount,omitempty"`
	RunningTotal *decimal.Decimal  `json:"runningTotal,omitempty"`
	Reason       string            `json:"reason,omitempty"`
	Attributes   map[string]string `json:"attributes,omitempty"`
	Timestamp    time.Time         `json:"timestamp"`
}

// PrimaryAccount returns the first affected account, or the actor when none is set.
func (e AuditEvent) PrimaryAccount() Address {
	if len(e.Accounts) > 0 {
		return e.Accounts[0]
	}
	return e.Actor
}
