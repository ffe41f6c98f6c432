package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditEvent is the persisted form of a committed audit event.
type AuditEvent struct {
	EventID      string            `json:"eventID"` // Primary Key (UUID)
	Sequence     int64             `json:"sequence"`
	Action       string            `json:"action"`
	Actor        string            `json:"actor"`
	Accounts     []string          `json:"accounts"`
	Asset        *string           `json:"asset"` // Nullable
	Amount       *decimal.Decimal  `json:"amount"`
	RunningTotal *decimal.Decimal  `json:"runningTotal"`
	Reason       *string           `json:"reason"`
	Attributes   map[string]string `json:"attributes"` // Stored as JSONB
	OccurredAt   time.Time         `json:"occurredAt"`
}
