package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lettaaaaa/uklon-service/internal/domain/entities"
	"github.com/lettaaaaa/uklon-service/internal/repository"
)

type DriverRepository struct {
	mu        sync.RWMutex
	nextID    int64
	drivers   map[int64]*entities.Driver
	byPhone   map[string]int64
	byLicense map[string]int64
}

func NewDriverRepository() *DriverRepository {
	return &DriverRepository{
		drivers:   make(map[int64]*entities.Driver),
		byPhone:   make(map[string]int64),
		byLicense: make(map[string]int64),
	}
}

func (r *DriverRepository) Create(ctx context.Context, driver *entities.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byLicense[driver.LicenseNumber]; exists {
		return repository.ErrDuplicateLicense
	}
	if _, exists := r.byPhone[driver.Phone]; exists {
		return repository.ErrDuplicatePhone
	}

	r.nextID++
	driver.ID = r.nextID
	r.drivers[driver.ID] = driver
	r.byPhone[driver.Phone] = driver.ID
	r.byLicense[driver.LicenseNumber] = driver.ID
	return nil
}

func (r *DriverRepository) GetByID(ctx context.Context, id int64) (*entities.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	driver, exists := r.drivers[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return driver, nil
}

// List returns drivers in insertion order (ids are monotonic).
func (r *DriverRepository) List(ctx context.Context, page repository.Page, availableOnly bool) ([]*entities.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*entities.Driver, 0, len(r.drivers))
	for _, d := range r.drivers {
		if availableOnly && !d.IsAvailable {
			continue
		}
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, page), nil
}

// paginate applies skip/limit to an id-ordered slice.
func paginate[T any](items []T, page repository.Page) []T {
	if page.Skip >= len(items) {
		return []T{}
	}
	items = items[page.Skip:]
	if page.Limit < len(items) {
		items = items[:page.Limit]
	}
	return items
}
