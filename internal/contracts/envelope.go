package contracts

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StorefrontProducer = "storefront-service"
	envelopeVersion    = 1
)

// EventEnvelope wraps every event published by the storefront.
type EventEnvelope[P any] struct {
	EventName     string    `json:"eventName"`
	EventVersion  int       `json:"eventVersion"`
	EventID       string    `json:"eventId"`
	CorrelationID string    `json:"correlationId,omitempty"`
	CausationID   string    `json:"causationId,omitempty"`
	Producer      string    `json:"producer"`
	PartitionKey  string    `json:"partitionKey"`
	Sequence      int64     `json:"sequence"`
	OccurredAt    time.Time `json:"occurredAt"`
	Schema        string    `json:"schema"`
	Payload       P         `json:"payload"`
}

type EnvelopeOptions struct {
	PartitionKey  string
	Sequence      int64
	Producer      string
	SchemaPath    string
	CorrelationID string
	CausationID   string
	EventID       string
	OccurredAt    time.Time
}

func newEnvelope[P any](name, schema string, payload P, opts EnvelopeOptions) EventEnvelope[P] {
	eventID := opts.EventID
	if eventID == "" {
		eventID = uuid.NewString()
	}

	occurredAt := opts.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	schemaPath := opts.SchemaPath
	if schemaPath == "" {
		schemaPath = schema
	}

	producer := opts.Producer
	if producer == "" {
		producer = StorefrontProducer
	}

	return EventEnvelope[P]{
		EventName:     name,
		EventVersion:  envelopeVersion,
		EventID:       eventID,
		CorrelationID: opts.CorrelationID,
		CausationID:   opts.CausationID,
		Producer:      producer,
		PartitionKey:  opts.PartitionKey,
		Sequence:      opts.Sequence,
		OccurredAt:    occurredAt,
		Schema:        schemaPath,
		Payload:       payload,
	}
}

// Validate checks the envelope fields consumers rely on.
func (e EventEnvelope[P]) Validate(expectedName string) error {
	if e.EventName != expectedName {
		return fmt.Errorf("unexpected eventName %q", e.EventName)
	}
	if e.EventVersion != envelopeVersion {
		return fmt.Errorf("unexpected eventVersion %d", e.EventVersion)
	}
	if e.EventID == "" {
		return errors.New("missing eventId")
	}
	if e.PartitionKey == "" {
		return errors.New("missing partitionKey")
	}
	if e.Sequence <= 0 {
		return errors.New("sequence must be positive")
	}
	if e.Producer == "" {
		return errors.New("missing producer")
	}
	return nil
}
