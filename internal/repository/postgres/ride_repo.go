package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lettaaaaa/uklon-service/internal/domain/entities"
	"github.com/lettaaaaa/uklon-service/internal/repository"
)

type RideRepository struct {
	pool *pgxpool.Pool
}

func NewRideRepository(pool *pgxpool.Pool) *RideRepository {
	return &RideRepository{pool: pool}
}

func (r *RideRepository) Create(ctx context.Context, ride *entities.Ride) error {
	query := `
		INSERT INTO rides (user_id, driver_id, pickup_location, dropoff_location, status, price, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		ride.UserID,
		ride.DriverID,
		ride.PickupLocation,
		ride.DropoffLocation,
		ride.Status,
		ride.Price,
		ride.CreatedAt,
		ride.CompletedAt,
	).Scan(&ride.ID)
	if err != nil {
		return fmt.Errorf("insert ride: %w", err)
	}
	return nil
}

func (r *RideRepository) GetByID(ctx context.Context, id int64) (*entities.Ride, error) {
	query := `
		SELECT id, user_id, driver_id, pickup_location, dropoff_location, status, price, created_at, completed_at
		FROM rides
		WHERE id = $1
	`
	var ride entities.Ride
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ride.ID,
		&ride.UserID,
		&ride.DriverID,
		&ride.PickupLocation,
		&ride.DropoffLocation,
		&ride.Status,
		&ride.Price,
		&ride.CreatedAt,
		&ride.CompletedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &ride, nil
}

// Update writes all mutable ride fields. UserID, pickup and dropoff are
// immutable after creation and deliberately not part of the statement.
func (r *RideRepository) Update(ctx context.Context, ride *entities.Ride) error {
	query := `
		UPDATE rides
		SET driver_id = $2, status = $3, price = $4, completed_at = $5
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		ride.ID,
		ride.DriverID,
		ride.Status,
		ride.Price,
		ride.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("update ride: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *RideRepository) ListByUserID(ctx context.Context, userID int64, page repository.Page) ([]*entities.Ride, error) {
	query := `
		SELECT id, user_id, driver_id, pickup_location, dropoff_location, status, price, created_at, completed_at
		FROM rides
		WHERE user_id = $1
		ORDER BY id
		OFFSET $2 LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, userID, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list rides: %w", err)
	}
	defer rows.Close()

	rides := []*entities.Ride{}
	for rows.Next() {
		var ride entities.Ride
		if err := rows.Scan(
			&ride.ID,
			&ride.UserID,
			&ride.DriverID,
			&ride.PickupLocation,
			&ride.DropoffLocation,
			&ride.Status,
			&ride.Price,
			&ride.CreatedAt,
			&ride.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ride: %w", err)
		}
		rides = append(rides, &ride)
	}
	return rides, rows.Err()
}
