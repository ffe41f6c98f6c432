package dto

import "github.com/SscSPs/securities_vault/internal/core/domain"

// ListAuditEventsParams defines query parameters for listing committed audit events.
type ListAuditEventsParams struct {
	Account   string  `form:"account" binding:"omitempty,eth_addr"`
	Action    string  `form:"action"`
	Limit     int     `form:"limit,default=20" binding:"min=1,max=200"`
	NextToken *string `form:"nextToken"` // Opaque token from a previous page
}

// ListAuditEventsResponse wraps a page of audit events, newest first.
type ListAuditEventsResponse struct {
	Events    []domain.AuditEvent `json:"events"`
	NextToken *string             `json:"nextToken,omitempty"`
}

// ListAuditHistoryParams defines query parameters for the persisted history of one account.
type ListAuditHistoryParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=200"`
	NextToken *string `form:"nextToken"`
}
