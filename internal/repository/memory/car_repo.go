package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lettaaaaa/uklon-service/internal/domain/entities"
	"github.com/lettaaaaa/uklon-service/internal/repository"
)

type CarRepository struct {
	mu      sync.RWMutex
	nextID  int64
	cars    map[int64]*entities.Car
	byPlate map[string]int64
}

func NewCarRepository() *CarRepository {
	return &CarRepository{
		cars:    make(map[int64]*entities.Car),
		byPlate: make(map[string]int64),
	}
}

func (r *CarRepository) Create(ctx context.Context, car *entities.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byPlate[car.PlateNumber]; exists {
		return repository.ErrDuplicatePlate
	}

	r.nextID++
	car.ID = r.nextID
	r.cars[car.ID] = car
	r.byPlate[car.PlateNumber] = car.ID
	return nil
}

func (r *CarRepository) GetByID(ctx context.Context, id int64) (*entities.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	car, exists := r.cars[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return car, nil
}

func (r *CarRepository) List(ctx context.Context, page repository.Page) ([]*entities.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*entities.Car, 0, len(r.cars))
	for _, c := range r.cars {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, page), nil
}
