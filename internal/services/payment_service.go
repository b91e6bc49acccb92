package services

import (
	"context"
	"errors"

	"github.com/lettaaaaa/uklon-service/internal/domain/entities"
	"github.com/lettaaaaa/uklon-service/internal/repository"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrNotPaymentOwner = errors.New("not authorized to access this payment")
	ErrPaymentExists   = errors.New("payment already exists for this ride")
)

// PaymentService records at most one payment per ride, always owned by the
// ride's owner. Payment processing is out of scope, so every recorded payment
// is already completed.
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	rideRepo    repository.RideRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository, rideRepo repository.RideRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		rideRepo:    rideRepo,
	}
}

// CreatePayment records a payment against an owned ride. The one-payment-
// per-ride rule rests on the store's unique constraint, not a pre-check.
func (s *PaymentService) CreatePayment(ctx context.Context, requesterID, rideID int64, amount float64, method string) (*entities.Payment, error) {
	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRideNotFound
		}
		return nil, err
	}
	if ride.UserID != requesterID {
		return nil, ErrNotRideOwner
	}

	payment := entities.NewPayment(rideID, ride.UserID, amount, method)
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		if errors.Is(err, repository.ErrDuplicatePayment) {
			return nil, ErrPaymentExists
		}
		return nil, err
	}
	return payment, nil
}

// ListPayments returns only payments owned by requesterID.
func (s *PaymentService) ListPayments(ctx context.Context, requesterID int64, page repository.Page) ([]*entities.Payment, error) {
	return s.paymentRepo.ListByUserID(ctx, requesterID, page)
}

// GetPayment checks existence before ownership, same ordering as rides.
func (s *PaymentService) GetPayment(ctx context.Context, id, requesterID int64) (*entities.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if payment.UserID != requesterID {
		return nil, ErrNotPaymentOwner
	}
	return payment, nil
}
