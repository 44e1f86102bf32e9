package service

import (
	"context"
	"time"
)

// VisitEvent is emitted after a committed visit toggle
type VisitEvent struct {
	EventID    string    `json:"event_id"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	UserID     int64     `json:"user_id"`
	LocationID int64     `json:"location_id"`
	Outcome    string    `json:"outcome"` // "added" or "removed"
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishVisitEvent publishes a visit toggle event
	PublishVisitEvent(ctx context.Context, event *VisitEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
