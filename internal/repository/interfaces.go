// Package repository defines the persistence ports shared by the Postgres and
// in-memory backends. Uniqueness is enforced by the store itself: Create
// methods report a violated unique constraint via the ErrDuplicate* sentinels
// instead of the caller pre-checking.
package repository

import (
	"context"
	"errors"

	"github.com/lettaaaaa/uklon-service/internal/domain/entities"
)

var (
	ErrNotFound = errors.New("record not found")

	ErrDuplicateUsername = errors.New("username already registered")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicatePhone    = errors.New("phone already registered")
	ErrDuplicateLicense  = errors.New("license number already registered")
	ErrDuplicatePlate    = errors.New("plate number already registered")
	ErrDuplicatePayment  = errors.New("payment already exists for this ride")
)

// Page bounds a list query. Values are assumed normalized by the caller.
type Page struct {
	Skip  int
	Limit int
}

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
}

type DriverRepository interface {
	Create(ctx context.Context, driver *entities.Driver) error
	GetByID(ctx context.Context, id int64) (*entities.Driver, error)
	List(ctx context.Context, page Page, availableOnly bool) ([]*entities.Driver, error)
}

type CarRepository interface {
	Create(ctx context.Context, car *entities.Car) error
	GetByID(ctx context.Context, id int64) (*entities.Car, error)
	List(ctx context.Context, page Page) ([]*entities.Car, error)
}

type RideRepository interface {
	Create(ctx context.Context, ride *entities.Ride) error
	GetByID(ctx context.Context, id int64) (*entities.Ride, error)
	Update(ctx context.Context, ride *entities.Ride) error
	ListByUserID(ctx context.Context, userID int64, page Page) ([]*entities.Ride, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *entities.Payment) error
	GetByID(ctx context.Context, id int64) (*entities.Payment, error)
	ListByUserID(ctx context.Context, userID int64, page Page) ([]*entities.Payment, error)
}
