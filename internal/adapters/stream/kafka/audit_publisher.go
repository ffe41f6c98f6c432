// Package kafka publishes committed audit events to a Kafka topic for
// off-chain indexing.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/SscSPs/securities_vault/internal/core/domain"
	portsrepo "github.com/SscSPs/securities_vault/internal/core/ports/repositories"
	"github.com/twmb/franz-go/pkg/kgo"
)

// AuditPublisher produces one record per event, keyed by the primary
// account so that the events of an account stay ordered within a partition.
type AuditPublisher struct {
	client *kgo.Client
}

var _ portsrepo.AuditEventWriter = (*AuditPublisher)(nil)

// NewAuditPublisher connects a producer to brokers. Extra options are
// appended after the defaults.
func NewAuditPublisher(brokers []string, topic string, opts ...kgo.Opt) (*AuditPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka: no seed brokers")
	}
	base := []kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	}
	client, err := kgo.NewClient(append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("kafka: creating client: %w", err)
	}
	return &AuditPublisher{client: client}, nil
}

// AppendAuditEvents produces the batch synchronously and fails if any record failed.
func (p *AuditPublisher) AppendAuditEvents(ctx context.Context, events []domain.AuditEvent) error {
	if len(events) == 0 {
		return nil
	}
	records := make([]*kgo.Record, 0, len(events))
	for _, event := range events {
		record, err := toRecord(event)
		if err != nil {
			return err
		}
		records = append(records, record)
	}
	if err := p.client.ProduceSync(ctx, records...).FirstErr(); err != nil {
		return fmt.Errorf("kafka: producing %d audit events: %w", len(records), err)
	}
	return nil
}

// Ping checks that at least one broker is reachable.
func (p *AuditPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}

func (p *AuditPublisher) Close() {
	p.client.Close()
}

func toRecord(event domain.AuditEvent) (*kgo.Record, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("kafka: encoding audit event %s: %w", event.EventID, err)
	}
	return &kgo.Record{
		Key:   []byte(event.PrimaryAccount()),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "event_id", Value: []byte(event.EventID)},
			{Key: "action", Value: []byte(event.Action)},
			{Key: "sequence", Value: []byte(strconv.FormatUint(event.Sequence, 10))},
		},
		Timestamp: event.Timestamp,
	}, nil
}
