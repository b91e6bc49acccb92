package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lettaaaaa/uklon-service/internal/domain/entities"
	"github.com/lettaaaaa/uklon-service/internal/messaging"
	"github.com/lettaaaaa/uklon-service/internal/repository"
)

var (
	ErrRideNotFound      = errors.New("ride not found")
	ErrNotRideOwner      = errors.New("not authorized to access this ride")
	ErrInvalidStatus     = errors.New("unknown ride status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// RideUpdate carries a partial update. Nil fields are left untouched.
type RideUpdate struct {
	DriverID *int64
	Status   *string
	Price    *float64
}

// RideService owns the ride lifecycle: creation, user-scoped reads, partial
// updates validated against the status transition table, and cancellation.
// Every mutation emits a lifecycle event; publish failures are logged and
// never fail the request.
type RideService struct {
	rideRepo   repository.RideRepository
	driverRepo repository.DriverRepository
	publisher  messaging.RideEventPublisher
	log        *slog.Logger
}

func NewRideService(
	rideRepo repository.RideRepository,
	driverRepo repository.DriverRepository,
	publisher messaging.RideEventPublisher,
	log *slog.Logger,
) *RideService {
	return &RideService{
		rideRepo:   rideRepo,
		driverRepo: driverRepo,
		publisher:  publisher,
		log:        log,
	}
}

// CreateRide always succeeds for an authenticated user: a pending ride with
// no driver and no price.
func (s *RideService) CreateRide(ctx context.Context, userID int64, pickupLocation, dropoffLocation string) (*entities.Ride, error) {
	ride := entities.NewRide(userID, pickupLocation, dropoffLocation)
	if err := s.rideRepo.Create(ctx, ride); err != nil {
		return nil, err
	}
	s.publish(ctx, messaging.EventRideCreated, ride)
	return ride, nil
}

// ListRides returns only rides owned by userID.
func (s *RideService) ListRides(ctx context.Context, userID int64, page repository.Page) ([]*entities.Ride, error) {
	return s.rideRepo.ListByUserID(ctx, userID, page)
}

// GetRide checks existence before ownership: a non-owner probing a real ride
// id gets ErrNotRideOwner, a nonexistent id gets ErrRideNotFound.
func (s *RideService) GetRide(ctx context.Context, id, requesterID int64) (*entities.Ride, error) {
	ride, err := s.rideRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRideNotFound
		}
		return nil, err
	}
	if ride.UserID != requesterID {
		return nil, ErrNotRideOwner
	}
	return ride, nil
}

// UpdateRide applies the provided fields to an owned ride. A status change
// must be allowed by the transition table; the first transition to completed
// stamps the completion time, and later changes never clear it.
func (s *RideService) UpdateRide(ctx context.Context, id, requesterID int64, update RideUpdate) (*entities.Ride, error) {
	ride, err := s.GetRide(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	if update.DriverID != nil {
		if _, err := s.driverRepo.GetByID(ctx, *update.DriverID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrDriverNotFound
			}
			return nil, err
		}
		ride.AssignDriver(*update.DriverID)
	}
	if update.Status != nil {
		status := entities.RideStatus(*update.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		if err := ride.TransitionTo(status); err != nil {
			return nil, ErrInvalidTransition
		}
	}
	if update.Price != nil {
		ride.SetPrice(*update.Price)
	}

	if err := s.rideRepo.Update(ctx, ride); err != nil {
		return nil, err
	}
	s.publish(ctx, messaging.EventRideUpdated, ride)
	return ride, nil
}

// CancelRide unconditionally marks an owned ride cancelled, whatever its
// current status. Driver, price and completion time are left as they are.
func (s *RideService) CancelRide(ctx context.Context, id, requesterID int64) error {
	ride, err := s.GetRide(ctx, id, requesterID)
	if err != nil {
		return err
	}

	ride.Cancel()
	if err := s.rideRepo.Update(ctx, ride); err != nil {
		return err
	}
	s.publish(ctx, messaging.EventRideCancelled, ride)
	return nil
}

func (s *RideService) publish(ctx context.Context, eventType string, ride *entities.Ride) {
	if err := s.publisher.PublishRideEvent(ctx, messaging.NewRideEvent(eventType, ride)); err != nil {
		s.log.Error("publish ride event failed",
			"event", eventType,
			"ride_id", ride.ID,
			"error", err,
		)
	}
}
