package services

import (
	"context"
	"errors"

	"github.com/lettaaaaa/uklon-service/internal/domain/entities"
	"github.com/lettaaaaa/uklon-service/internal/repository"
)

var (
	ErrCarNotFound = errors.New("car not found")
	ErrPlateExists = errors.New("plate number already registered")
)

type CarService struct {
	carRepo    repository.CarRepository
	driverRepo repository.DriverRepository
}

func NewCarService(carRepo repository.CarRepository, driverRepo repository.DriverRepository) *CarService {
	return &CarService{
		carRepo:    carRepo,
		driverRepo: driverRepo,
	}
}

// CreateCar registers a car for an existing driver. The driver lookup runs
// first so a missing driver reports not-found rather than a constraint error.
func (s *CarService) CreateCar(ctx context.Context, driverID int64, model, plateNumber string, color *string, year *int) (*entities.Car, error) {
	if _, err := s.driverRepo.GetByID(ctx, driverID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}

	car := entities.NewCar(driverID, model, plateNumber, color, year)
	if err := s.carRepo.Create(ctx, car); err != nil {
		if errors.Is(err, repository.ErrDuplicatePlate) {
			return nil, ErrPlateExists
		}
		return nil, err
	}
	return car, nil
}

func (s *CarService) ListCars(ctx context.Context, page repository.Page) ([]*entities.Car, error) {
	return s.carRepo.List(ctx, page)
}

func (s *CarService) GetCar(ctx context.Context, id int64) (*entities.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	return car, nil
}
