package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"raffler/domain/events"
	"raffler/infrastructure/observability"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// sourceService identifies this service in event envelopes
const sourceService = "raffler"

// domainEventStream is the JetStream stream capturing raffle events
const domainEventStream = "raffle_events"

// MessageBus is the subset of the NATS client the event publisher needs
type MessageBus interface {
	Publish(ctx context.Context, subject, msgID string, data []byte) error
}

// EventEnvelope wraps every published event payload
type EventEnvelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	Timestamp     time.Time       `json:"timestamp"`
	SourceService string          `json:"source_service"`
	Payload       json.RawMessage `json:"payload"`
}

// NATSEventPublisher implements the EventPublisher interface using NATS
type NATSEventPublisher struct {
	bus           MessageBus
	subjectMapper *EventSubjectMapper
	timeout       time.Duration
}

// NewNATSEventPublisher creates a new NATS event publisher
func NewNATSEventPublisher(bus MessageBus, subjectMapper *EventSubjectMapper) *NATSEventPublisher {
	return &NATSEventPublisher{
		bus:           bus,
		subjectMapper: subjectMapper,
		timeout:       5 * time.Second,
	}
}

// Publish wraps the event in an envelope and publishes it on its raffle subject
func (p *NATSEventPublisher) Publish(event events.Event) error {
	subject := p.subjectMapper.MapEventToSubject(event)

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	envelope := EventEnvelope{
		EventID:       uuid.New().String(),
		EventType:     string(event.Type()),
		Timestamp:     time.Now().UTC(),
		SourceService: sourceService,
		Payload:       payload,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event envelope: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.bus.Publish(ctx, subject, envelope.EventID, data); err != nil {
		return fmt.Errorf("failed to publish event to NATS: %w", err)
	}

	if metrics := observability.GetMetrics(); metrics != nil {
		metrics.RecordEventPublished(string(event.Type()))
	}

	log.WithFields(log.Fields{
		"eventType": event.Type(),
		"eventId":   envelope.EventID,
		"subject":   subject,
	}).Debug("Published event to NATS")

	return nil
}

// EnsureDomainEventStream creates the raffle event stream if it is missing
func (p *NATSEventPublisher) EnsureDomainEventStream(client *NATSClient) error {
	return client.EnsureStream(domainEventStream, "Raffle domain events", p.subjectMapper.GetAllSubjects())
}
