// Package messaging publishes ride lifecycle events to a message broker.
// Publishing is fire-and-forget from the API's point of view: a failed
// publish is logged by the caller and never surfaced to the client.
package messaging

import (
	"context"
	"time"

	"github.com/lettaaaaa/uklon-service/internal/domain/entities"
)

// Routing keys for ride lifecycle events.
const (
	EventRideCreated   = "ride.created"
	EventRideUpdated   = "ride.updated"
	EventRideCancelled = "ride.cancelled"
)

// RideEvent is the JSON body published for every ride lifecycle change.
type RideEvent struct {
	Type       string              `json:"type"`
	RideID     int64               `json:"ride_id"`
	UserID     int64               `json:"user_id"`
	DriverID   *int64              `json:"driver_id,omitempty"`
	Status     entities.RideStatus `json:"status"`
	OccurredAt time.Time           `json:"occurred_at"`
}

// NewRideEvent builds an event snapshot from the ride's current state.
func NewRideEvent(eventType string, ride *entities.Ride) RideEvent {
	return RideEvent{
		Type:       eventType,
		RideID:     ride.ID,
		UserID:     ride.UserID,
		DriverID:   ride.DriverID,
		Status:     ride.Status,
		OccurredAt: time.Now().UTC(),
	}
}

// RideEventPublisher is the port the ride service publishes through.
type RideEventPublisher interface {
	PublishRideEvent(ctx context.Context, event RideEvent) error
}

// NoopPublisher discards events. Used when no broker is configured and in tests.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (*NoopPublisher) PublishRideEvent(ctx context.Context, event RideEvent) error {
	return nil
}
