package mapping

import (
	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/SscSPs/securities_vault/internal/models"
)

// ToModelAuditEvent converts a domain AuditEvent to a model AuditEvent
func ToModelAuditEvent(d domain.AuditEvent) models.AuditEvent {
	m := models.AuditEvent{
		EventID:      d.EventID,
		Sequence:     int64(d.Sequence),
		Action:       string(d.Action),
		Actor:        d.Actor.String(),
		Accounts:     make([]string, len(d.Accounts)),
		Amount:       d.Amount,
		RunningTotal: d.RunningTotal,
		Attributes:   d.Attributes,
		OccurredAt:   d.Timestamp,
	}
	for i, account := range d.Accounts {
		m.Accounts[i] = account.String()
	}
	if d.Asset != "" {
		asset := d.Asset.String()
		m.Asset = &asset
	}
	if d.Reason != "" {
		reason := d.Reason
		m.Reason = &reason
	}
	if m.Attributes == nil {
		m.Attributes = map[string]string{}
	}
	return m
}

// ToDomainAuditEvent converts a model AuditEvent to a domain AuditEvent
func ToDomainAuditEvent(m models.AuditEvent) domain.AuditEvent {
	d := domain.AuditEvent{
		EventID:      m.EventID,
		Sequence:     uint64(m.Sequence),
		Action:       domain.AuditAction(m.Action),
		Actor:        domain.Address(m.Actor),
		Amount:       m.Amount,
		RunningTotal: m.RunningTotal,
		Timestamp:    m.OccurredAt,
	}
	if len(m.Accounts) > 0 {
		d.Accounts = make([]domain.Address, len(m.Accounts))
		for i, account := range m.Accounts {
			d.Accounts[i] = domain.Address(account)
		}
	}
	if m.Asset != nil {
		d.Asset = domain.Address(*m.Asset)
	}
	if m.Reason != nil {
		d.Reason = *m.Reason
	}
	if len(m.Attributes) > 0 {
		d.Attributes = m.Attributes
	}
	return d
}

// ToDomainAuditEvents converts a slice of model AuditEvents to domain AuditEvents
func ToDomainAuditEvents(ms []models.AuditEvent) []domain.AuditEvent {
	events := make([]domain.AuditEvent, len(ms))
	for i, m := range ms {
		events[i] = ToDomainAuditEvent(m)
	}
	return events
}
