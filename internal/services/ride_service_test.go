package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/lettaaaaa/uklon-service/internal/domain/entities"
	"github.com/lettaaaaa/uklon-service/internal/messaging"
	"github.com/lettaaaaa/uklon-service/internal/repository"
	"github.com/lettaaaaa/uklon-service/internal/repository/memory"
)

// recordingPublisher captures events so tests can assert on them.
type recordingPublisher struct {
	events []messaging.RideEvent
}

func (p *recordingPublisher) PublishRideEvent(ctx context.Context, event messaging.RideEvent) error {
	p.events = append(p.events, event)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupRideService() (*RideService, *memory.DriverRepository, *recordingPublisher) {
	rideRepo := memory.NewRideRepository()
	driverRepo := memory.NewDriverRepository()
	publisher := &recordingPublisher{}
	service := NewRideService(rideRepo, driverRepo, publisher, discardLogger())
	return service, driverRepo, publisher
}

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func floatPtr(f float64) *float64 { return &f }

func TestRideService_CreateRide(t *testing.T) {
	service, _, publisher := setupRideService()
	ctx := context.Background()

	ride, err := service.CreateRide(ctx, 1, "Main St", "Oak Ave")
	if err != nil {
		t.Fatalf("CreateRide failed: %v", err)
	}

	if ride.Status != entities.RideStatusPending {
		t.Errorf("expected status pending, got %s", ride.Status)
	}
	if ride.DriverID != nil {
		t.Error("new ride must have no driver")
	}
	if ride.Price != nil {
		t.Error("new ride must have no price")
	}
	if ride.ID == 0 {
		t.Error("expected ride id to be assigned")
	}
	if len(publisher.events) != 1 || publisher.events[0].Type != messaging.EventRideCreated {
		t.Errorf("expected one ride.created event, got %+v", publisher.events)
	}
}

func TestRideService_GetRide_NotFoundBeforeForbidden(t *testing.T) {
	service, _, _ := setupRideService()
	ctx := context.Background()

	if _, err := service.GetRide(ctx, 9999, 1); err != ErrRideNotFound {
		t.Errorf("expected ErrRideNotFound for missing id, got %v", err)
	}

	ride, _ := service.CreateRide(ctx, 1, "Main St", "Oak Ave")
	if _, err := service.GetRide(ctx, ride.ID, 2); err != ErrNotRideOwner {
		t.Errorf("expected ErrNotRideOwner for foreign ride, got %v", err)
	}
}

func TestRideService_UpdateRide_CompleteThenCancel(t *testing.T) {
	service, _, _ := setupRideService()
	ctx := context.Background()

	ride, _ := service.CreateRide(ctx, 1, "Main St", "Oak Ave")

	updated, err := service.UpdateRide(ctx, ride.ID, 1, RideUpdate{Status: strPtr("completed")})
	if err != nil {
		t.Fatalf("UpdateRide failed: %v", err)
	}
	if updated.Status != entities.RideStatusCompleted {
		t.Errorf("expected status completed, got %s", updated.Status)
	}
	if updated.CompletedAt == nil {
		t.Fatal("CompletedAt not stamped")
	}
	stamped := *updated.CompletedAt

	if err := service.CancelRide(ctx, ride.ID, 1); err != nil {
		t.Fatalf("CancelRide failed: %v", err)
	}
	got, _ := service.GetRide(ctx, ride.ID, 1)
	if got.Status != entities.RideStatusCancelled {
		t.Errorf("expected status cancelled, got %s", got.Status)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(stamped) {
		t.Error("CompletedAt must survive cancellation")
	}
}

func TestRideService_UpdateRide_InvalidTransition(t *testing.T) {
	service, _, _ := setupRideService()
	ctx := context.Background()

	ride, _ := service.CreateRide(ctx, 1, "A", "B")
	if _, err := service.UpdateRide(ctx, ride.ID, 1, RideUpdate{Status: strPtr("completed")}); err != nil {
		t.Fatalf("pending -> completed failed: %v", err)
	}

	if _, err := service.UpdateRide(ctx, ride.ID, 1, RideUpdate{Status: strPtr("in_progress")}); err != ErrInvalidTransition {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestRideService_UpdateRide_UnknownStatus(t *testing.T) {
	service, _, _ := setupRideService()
	ctx := context.Background()

	ride, _ := service.CreateRide(ctx, 1, "A", "B")
	if _, err := service.UpdateRide(ctx, ride.ID, 1, RideUpdate{Status: strPtr("teleporting")}); err != ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestRideService_UpdateRide_PartialFields(t *testing.T) {
	service, driverRepo, _ := setupRideService()
	ctx := context.Background()

	driver := entities.NewDriver("Bob", "+100", "DL-1")
	if err := driverRepo.Create(ctx, driver); err != nil {
		t.Fatalf("create driver: %v", err)
	}

	ride, _ := service.CreateRide(ctx, 1, "A", "B")

	updated, err := service.UpdateRide(ctx, ride.ID, 1, RideUpdate{
		DriverID: int64Ptr(driver.ID),
		Price:    floatPtr(12.5),
	})
	if err != nil {
		t.Fatalf("UpdateRide failed: %v", err)
	}
	if updated.DriverID == nil || *updated.DriverID != driver.ID {
		t.Error("driver not assigned")
	}
	if updated.Price == nil || *updated.Price != 12.5 {
		t.Error("price not set")
	}
	if updated.Status != entities.RideStatusPending {
		t.Errorf("status must be untouched by partial update, got %s", updated.Status)
	}
}

func TestRideService_UpdateRide_MissingDriver(t *testing.T) {
	service, _, _ := setupRideService()
	ctx := context.Background()

	ride, _ := service.CreateRide(ctx, 1, "A", "B")
	if _, err := service.UpdateRide(ctx, ride.ID, 1, RideUpdate{DriverID: int64Ptr(9999)}); err != ErrDriverNotFound {
		t.Errorf("expected ErrDriverNotFound, got %v", err)
	}
}

func TestRideService_UpdateRide_Forbidden(t *testing.T) {
	service, _, _ := setupRideService()
	ctx := context.Background()

	ride, _ := service.CreateRide(ctx, 1, "A", "B")
	if _, err := service.UpdateRide(ctx, ride.ID, 2, RideUpdate{Price: floatPtr(1)}); err != ErrNotRideOwner {
		t.Errorf("expected ErrNotRideOwner, got %v", err)
	}
}

func TestRideService_CancelRide_AlreadyCancelled(t *testing.T) {
	service, _, publisher := setupRideService()
	ctx := context.Background()

	ride, _ := service.CreateRide(ctx, 1, "A", "B")
	if err := service.CancelRide(ctx, ride.ID, 1); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}
	if err := service.CancelRide(ctx, ride.ID, 1); err != nil {
		t.Fatalf("second cancel failed: %v", err)
	}

	last := publisher.events[len(publisher.events)-1]
	if last.Type != messaging.EventRideCancelled {
		t.Errorf("expected ride.cancelled event, got %s", last.Type)
	}
}

func TestRideService_ListRides_ScopedAndPaged(t *testing.T) {
	service, _, _ := setupRideService()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		service.CreateRide(ctx, 1, "A", "B")
	}
	service.CreateRide(ctx, 2, "C", "D")

	rides, err := service.ListRides(ctx, 1, repository.Page{Skip: 1, Limit: 2})
	if err != nil {
		t.Fatalf("ListRides failed: %v", err)
	}
	if len(rides) != 2 {
		t.Fatalf("expected 2 rides, got %d", len(rides))
	}
	for _, ride := range rides {
		if ride.UserID != 1 {
			t.Errorf("ride %d belongs to user %d, expected 1", ride.ID, ride.UserID)
		}
	}
	if rides[0].ID >= rides[1].ID {
		t.Error("rides must be ordered by insertion")
	}
}
