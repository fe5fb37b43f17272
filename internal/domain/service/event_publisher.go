package service

import (
	"context"
	"time"
)

// Account event types.
const (
	AccountEventCreated      = "account.created"
	AccountEventUpdated      = "account.updated"
	AccountEventPhotoUpdated = "account.photo_updated"
)

// AccountEvent announces a change to an account to downstream consumers.
type AccountEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	Role       string    `json:"role,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account event
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
