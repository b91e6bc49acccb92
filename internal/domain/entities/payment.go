package entities

import "time"

// PaymentStatus mirrors the stored payment states. Payment processing itself
// is out of scope, so every payment is recorded as completed; pending and
// failed exist for the stored shape only.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment records the outcome of paying for a ride. At most one payment
// exists per ride, and its user always equals the ride's owner.
type Payment struct {
	ID        int64         `json:"id"`
	RideID    int64         `json:"ride_id"`
	UserID    int64         `json:"user_id"`
	Amount    float64       `json:"amount"`
	Method    string        `json:"payment_method"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewPayment creates a Payment already marked completed.
func NewPayment(rideID, userID int64, amount float64, method string) *Payment {
	return &Payment{
		RideID:    rideID,
		UserID:    userID,
		Amount:    amount,
		Method:    method,
		Status:    PaymentStatusCompleted,
		CreatedAt: time.Now().UTC(),
	}
}
