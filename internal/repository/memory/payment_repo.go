package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lettaaaaa/uklon-service/internal/domain/entities"
	"github.com/lettaaaaa/uklon-service/internal/repository"
)

type PaymentRepository struct {
	mu       sync.RWMutex
	nextID   int64
	payments map[int64]*entities.Payment
	byRideID map[int64]int64
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		payments: make(map[int64]*entities.Payment),
		byRideID: make(map[int64]int64),
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byRideID[payment.RideID]; exists {
		return repository.ErrDuplicatePayment
	}

	r.nextID++
	payment.ID = r.nextID
	r.payments[payment.ID] = payment
	r.byRideID[payment.RideID] = payment.ID
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, exists := r.payments[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return payment, nil
}

func (r *PaymentRepository) ListByUserID(ctx context.Context, userID int64, page repository.Page) ([]*entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var payments []*entities.Payment
	for _, p := range r.payments {
		if p.UserID == userID {
			payments = append(payments, p)
		}
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].ID < payments[j].ID })
	return paginate(payments, page), nil
}
