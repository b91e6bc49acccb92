package entities

import (
	"errors"
	"time"
)

// RideStatus represents the current lifecycle state of a ride.
//
// The lifecycle is:
//
//	pending → in_progress → completed
//	     (pending may also jump straight to completed;
//	      any non-terminal state can transition to cancelled)
type RideStatus string

const (
	RideStatusPending    RideStatus = "pending"
	RideStatusInProgress RideStatus = "in_progress"
	RideStatusCompleted  RideStatus = "completed"
	RideStatusCancelled  RideStatus = "cancelled"
)

// validTransitions defines which status changes are allowed from each state.
// Terminal states (completed, cancelled) have empty slices. This map IS the
// state machine — CanTransitionTo looks up the current status and checks
// whether the target is in the slice.
var validTransitions = map[RideStatus][]RideStatus{
	RideStatusPending:    {RideStatusInProgress, RideStatusCompleted, RideStatusCancelled},
	RideStatusInProgress: {RideStatusCompleted, RideStatusCancelled},
	RideStatusCompleted:  {},
	RideStatusCancelled:  {},
}

// Valid reports whether s is one of the known ride statuses.
func (s RideStatus) Valid() bool {
	_, ok := validTransitions[s]
	return ok
}

// Ride is the central domain entity. It belongs to exactly one user (immutable
// after creation), may be assigned to a driver, and tracks its status together
// with the completion timestamp.
type Ride struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id"`
	DriverID        *int64     `json:"driver_id,omitempty"`
	PickupLocation  string     `json:"pickup_location"`
	DropoffLocation string     `json:"dropoff_location"`
	Status          RideStatus `json:"status"`
	Price           *float64   `json:"price,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// NewRide creates a Ride in the pending state with no driver and no price.
func NewRide(userID int64, pickupLocation, dropoffLocation string) *Ride {
	return &Ride{
		UserID:          userID,
		PickupLocation:  pickupLocation,
		DropoffLocation: dropoffLocation,
		Status:          RideStatusPending,
		CreatedAt:       time.Now().UTC(),
	}
}

// CanTransitionTo checks if moving to newStatus is a valid state change.
// Re-asserting the current status is always allowed (partial updates may
// resend the status unchanged).
func (r *Ride) CanTransitionTo(newStatus RideStatus) bool {
	if newStatus == r.Status {
		return true
	}
	allowed, exists := validTransitions[r.Status]
	if !exists {
		return false
	}
	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

// TransitionTo attempts to move the ride to newStatus. Returns an error if the
// transition is not allowed. The first transition to completed stamps
// CompletedAt; once set it is never cleared.
func (r *Ride) TransitionTo(newStatus RideStatus) error {
	if !r.CanTransitionTo(newStatus) {
		return errors.New("invalid status transition from " + string(r.Status) + " to " + string(newStatus))
	}
	r.Status = newStatus
	if newStatus == RideStatusCompleted && r.CompletedAt == nil {
		now := time.Now().UTC()
		r.CompletedAt = &now
	}
	return nil
}

// Cancel unconditionally marks the ride cancelled, regardless of current
// status. Driver, price and CompletedAt are left untouched.
func (r *Ride) Cancel() {
	r.Status = RideStatusCancelled
}

// AssignDriver records which driver is handling this ride.
func (r *Ride) AssignDriver(driverID int64) {
	r.DriverID = &driverID
}

// SetPrice records the agreed price for the ride.
func (r *Ride) SetPrice(price float64) {
	r.Price = &price
}
