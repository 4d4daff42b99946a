package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	aggregateID := "sim-123"

	before := time.Now().UTC()
	event := NewBaseEvent("credit.simulation.saved", aggregateID, "CreditSimulation")
	after := time.Now().UTC()

	if event.EventID() == "" {
		t.Error("expected non-empty event ID")
	}

	if event.EventType() != "credit.simulation.saved" {
		t.Errorf("expected event type %q, got %q", "credit.simulation.saved", event.EventType())
	}

	if event.AggregateID() != aggregateID {
		t.Errorf("expected aggregate ID %v, got %v", aggregateID, event.AggregateID())
	}

	if event.AggregateType() != "CreditSimulation" {
		t.Errorf("expected aggregate type %q, got %q", "CreditSimulation", event.AggregateType())
	}

	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Errorf("expected occurredAt between %v and %v, got %v", before, after, event.OccurredAt())
	}
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}

func TestBaseEventSerializesEnvelope(t *testing.T) {
	event := NewBaseEvent("credit.application.approved", "app-1", "ProductApplication")

	payload, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("expected valid JSON payload, got error: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		t.Fatalf("expected valid JSON payload, got error: %v", err)
	}

	if parsed["event_type"] != "credit.application.approved" {
		t.Errorf("expected event_type in payload, got %v", parsed["event_type"])
	}

	if parsed["aggregate_id"] != "app-1" {
		t.Errorf("expected aggregate_id in payload, got %v", parsed["aggregate_id"])
	}
}
