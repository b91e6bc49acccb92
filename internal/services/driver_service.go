package services

import (
	"context"
	"errors"

	"github.com/lettaaaaa/uklon-service/internal/domain/entities"
	"github.com/lettaaaaa/uklon-service/internal/repository"
)

var (
	ErrDriverNotFound = errors.New("driver not found")
	ErrLicenseExists  = errors.New("license number already registered")
	ErrPhoneExists    = errors.New("phone already registered")
)

type DriverService struct {
	driverRepo repository.DriverRepository
}

func NewDriverService(driverRepo repository.DriverRepository) *DriverService {
	return &DriverService{driverRepo: driverRepo}
}

func (s *DriverService) CreateDriver(ctx context.Context, name, phone, licenseNumber string) (*entities.Driver, error) {
	driver := entities.NewDriver(name, phone, licenseNumber)
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateLicense):
			return nil, ErrLicenseExists
		case errors.Is(err, repository.ErrDuplicatePhone):
			return nil, ErrPhoneExists
		}
		return nil, err
	}
	return driver, nil
}

// ListDrivers is open to any authenticated identity, no ownership filter.
func (s *DriverService) ListDrivers(ctx context.Context, page repository.Page, availableOnly bool) ([]*entities.Driver, error) {
	return s.driverRepo.List(ctx, page, availableOnly)
}

func (s *DriverService) GetDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}
	return driver, nil
}
