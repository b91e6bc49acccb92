package services

import (
	"context"
	"testing"

	"github.com/lettaaaaa/uklon-service/internal/repository"
	"github.com/lettaaaaa/uklon-service/internal/repository/memory"
)

func setupPaymentService() (*PaymentService, *RideService) {
	rideRepo := memory.NewRideRepository()
	driverRepo := memory.NewDriverRepository()
	paymentRepo := memory.NewPaymentRepository()
	rideService := NewRideService(rideRepo, driverRepo, &recordingPublisher{}, discardLogger())
	return NewPaymentService(paymentRepo, rideRepo), rideService
}

func TestPaymentService_CreatePayment(t *testing.T) {
	payments, rides := setupPaymentService()
	ctx := context.Background()

	ride, _ := rides.CreateRide(ctx, 1, "Main St", "Oak Ave")

	payment, err := payments.CreatePayment(ctx, 1, ride.ID, 25.0, "card")
	if err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}
	if payment.Status != "completed" {
		t.Errorf("expected status completed, got %s", payment.Status)
	}
	if payment.UserID != ride.UserID {
		t.Errorf("payment owner %d must equal ride owner %d", payment.UserID, ride.UserID)
	}
}

func TestPaymentService_CreatePayment_DuplicateRide(t *testing.T) {
	payments, rides := setupPaymentService()
	ctx := context.Background()

	ride, _ := rides.CreateRide(ctx, 1, "A", "B")

	if _, err := payments.CreatePayment(ctx, 1, ride.ID, 25.0, "card"); err != nil {
		t.Fatalf("first CreatePayment failed: %v", err)
	}
	if _, err := payments.CreatePayment(ctx, 1, ride.ID, 25.0, "cash"); err != ErrPaymentExists {
		t.Errorf("expected ErrPaymentExists, got %v", err)
	}
}

func TestPaymentService_CreatePayment_MissingRide(t *testing.T) {
	payments, _ := setupPaymentService()

	if _, err := payments.CreatePayment(context.Background(), 1, 9999, 25.0, "card"); err != ErrRideNotFound {
		t.Errorf("expected ErrRideNotFound, got %v", err)
	}
}

func TestPaymentService_CreatePayment_ForeignRide(t *testing.T) {
	payments, rides := setupPaymentService()
	ctx := context.Background()

	ride, _ := rides.CreateRide(ctx, 1, "A", "B")
	if _, err := payments.CreatePayment(ctx, 2, ride.ID, 25.0, "card"); err != ErrNotRideOwner {
		t.Errorf("expected ErrNotRideOwner, got %v", err)
	}
}

func TestPaymentService_GetPayment_Ownership(t *testing.T) {
	payments, rides := setupPaymentService()
	ctx := context.Background()

	ride, _ := rides.CreateRide(ctx, 1, "A", "B")
	payment, _ := payments.CreatePayment(ctx, 1, ride.ID, 10.0, "cash")

	if _, err := payments.GetPayment(ctx, payment.ID, 2); err != ErrNotPaymentOwner {
		t.Errorf("expected ErrNotPaymentOwner, got %v", err)
	}
	if _, err := payments.GetPayment(ctx, 9999, 1); err != ErrPaymentNotFound {
		t.Errorf("expected ErrPaymentNotFound, got %v", err)
	}
}

func TestPaymentService_ListPayments_Scoped(t *testing.T) {
	payments, rides := setupPaymentService()
	ctx := context.Background()

	rideA, _ := rides.CreateRide(ctx, 1, "A", "B")
	rideB, _ := rides.CreateRide(ctx, 2, "C", "D")
	payments.CreatePayment(ctx, 1, rideA.ID, 10.0, "card")
	payments.CreatePayment(ctx, 2, rideB.ID, 20.0, "cash")

	list, err := payments.ListPayments(ctx, 1, repository.Page{Skip: 0, Limit: 10})
	if err != nil {
		t.Fatalf("ListPayments failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(list))
	}
	if list[0].UserID != 1 {
		t.Errorf("expected payment owned by user 1, got %d", list[0].UserID)
	}
}
