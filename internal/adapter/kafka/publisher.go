package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"adledger/internal/core/domain"
	"adledger/internal/core/port"
)

// writer is the subset of *kafka.Writer the publisher uses.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventPublisher writes tracked interaction events to a Kafka topic, keyed
// by campaign id so one campaign's events stay ordered within a partition.
type EventPublisher struct {
	writer  writer
	timeout time.Duration
}

var _ port.EventPublisher = (*EventPublisher)(nil)

// NewEventPublisher creates a publisher for topic. Call Close when
// shutting down.
func NewEventPublisher(brokers []string, topic string) *EventPublisher {
	return &EventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 50 * time.Millisecond,
		},
		timeout: 5 * time.Second,
	}
}

// eventMessage is the wire form of an interaction event.
type eventMessage struct {
	ID             string  `json:"id"`
	CampaignID     string  `json:"campaign_id"`
	OrganizationID string  `json:"organization_id"`
	EventType      string  `json:"event_type"`
	VisitorHash    *string `json:"visitor_hash,omitempty"`
	CostAmount     *string `json:"cost_amount,omitempty"`
	PlacementKey   *string `json:"placement_key,omitempty"`
	OccurredAt     string  `json:"occurred_at"`
}

func encodeEvent(ev domain.InteractionEvent) ([]byte, error) {
	msg := eventMessage{
		ID:             ev.ID.String(),
		CampaignID:     ev.CampaignID.String(),
		OrganizationID: ev.OrganizationID.String(),
		EventType:      string(ev.EventType),
		VisitorHash:    ev.VisitorHash,
		PlacementKey:   ev.PlacementKey,
		OccurredAt:     ev.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
	if ev.CostAmount != nil {
		cost := ev.CostAmount.StringFixed(2)
		msg.CostAmount = &cost
	}
	return json.Marshal(msg)
}

// Publish writes one event. It waits at most the publisher timeout so a
// slow broker does not hold up the tracking response.
func (p *EventPublisher) Publish(ctx context.Context, ev domain.InteractionEvent) error {
	if p == nil || p.writer == nil {
		return nil
	}
	payload, err := encodeEvent(ev)
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.writer.WriteMessages(writeCtx, kafka.Message{
		Key:   []byte(ev.CampaignID.String()),
		Value: payload,
		Time:  ev.OccurredAt,
	})
}

// Close closes the writer. Safe to call on a nil publisher.
func (p *EventPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
