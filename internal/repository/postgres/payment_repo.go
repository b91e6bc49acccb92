package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lettaaaaa/uklon-service/internal/domain/entities"
	"github.com/lettaaaaa/uklon-service/internal/repository"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	query := `
		INSERT INTO payments (ride_id, user_id, amount, payment_method, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		payment.RideID,
		payment.UserID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.CreatedAt,
	).Scan(&payment.ID)
	if err != nil {
		if translated := translateError(err); translated != err {
			return translated
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*entities.Payment, error) {
	query := `
		SELECT id, ride_id, user_id, amount, payment_method, status, created_at
		FROM payments
		WHERE id = $1
	`
	var payment entities.Payment
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.RideID,
		&payment.UserID,
		&payment.Amount,
		&payment.Method,
		&payment.Status,
		&payment.CreatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &payment, nil
}

func (r *PaymentRepository) ListByUserID(ctx context.Context, userID int64, page repository.Page) ([]*entities.Payment, error) {
	query := `
		SELECT id, ride_id, user_id, amount, payment_method, status, created_at
		FROM payments
		WHERE user_id = $1
		ORDER BY id
		OFFSET $2 LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, userID, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	payments := []*entities.Payment{}
	for rows.Next() {
		var payment entities.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.RideID,
			&payment.UserID,
			&payment.Amount,
			&payment.Method,
			&payment.Status,
			&payment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, &payment)
	}
	return payments, rows.Err()
}
