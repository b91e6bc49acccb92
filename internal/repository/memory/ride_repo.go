package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lettaaaaa/uklon-service/internal/domain/entities"
	"github.com/lettaaaaa/uklon-service/internal/repository"
)

type RideRepository struct {
	mu     sync.RWMutex
	nextID int64
	rides  map[int64]*entities.Ride
}

func NewRideRepository() *RideRepository {
	return &RideRepository{
		rides: make(map[int64]*entities.Ride),
	}
}

func (r *RideRepository) Create(ctx context.Context, ride *entities.Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	ride.ID = r.nextID
	r.rides[ride.ID] = ride
	return nil
}

func (r *RideRepository) GetByID(ctx context.Context, id int64) (*entities.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ride, exists := r.rides[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return ride, nil
}

func (r *RideRepository) Update(ctx context.Context, ride *entities.Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rides[ride.ID]; !exists {
		return repository.ErrNotFound
	}
	r.rides[ride.ID] = ride
	return nil
}

// ListByUserID returns the user's rides in insertion order. This is an O(n)
// scan; the Postgres backend does it with an index.
func (r *RideRepository) ListByUserID(ctx context.Context, userID int64, page repository.Page) ([]*entities.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rides []*entities.Ride
	for _, ride := range r.rides {
		if ride.UserID == userID {
			rides = append(rides, ride)
		}
	}
	sort.Slice(rides, func(i, j int) bool { return rides[i].ID < rides[j].ID })
	return paginate(rides, page), nil
}
