package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lettaaaaa/uklon-service/internal/domain/entities"
	"github.com/lettaaaaa/uklon-service/internal/repository"
)

type DriverRepository struct {
	pool *pgxpool.Pool
}

func NewDriverRepository(pool *pgxpool.Pool) *DriverRepository {
	return &DriverRepository{pool: pool}
}

func (r *DriverRepository) Create(ctx context.Context, driver *entities.Driver) error {
	query := `
		INSERT INTO drivers (name, phone, license_number, rating, is_available, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		driver.Name,
		driver.Phone,
		driver.LicenseNumber,
		driver.Rating,
		driver.IsAvailable,
		driver.CreatedAt,
	).Scan(&driver.ID)
	if err != nil {
		if translated := translateError(err); translated != err {
			return translated
		}
		return fmt.Errorf("insert driver: %w", err)
	}
	return nil
}

func (r *DriverRepository) GetByID(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `
		SELECT id, name, phone, license_number, rating, is_available, created_at
		FROM drivers
		WHERE id = $1
	`
	var driver entities.Driver
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&driver.ID,
		&driver.Name,
		&driver.Phone,
		&driver.LicenseNumber,
		&driver.Rating,
		&driver.IsAvailable,
		&driver.CreatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &driver, nil
}

func (r *DriverRepository) List(ctx context.Context, page repository.Page, availableOnly bool) ([]*entities.Driver, error) {
	query := `
		SELECT id, name, phone, license_number, rating, is_available, created_at
		FROM drivers
		WHERE ($1 = false OR is_available = true)
		ORDER BY id
		OFFSET $2 LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, availableOnly, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	drivers := []*entities.Driver{}
	for rows.Next() {
		var driver entities.Driver
		if err := rows.Scan(
			&driver.ID,
			&driver.Name,
			&driver.Phone,
			&driver.LicenseNumber,
			&driver.Rating,
			&driver.IsAvailable,
			&driver.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		drivers = append(drivers, &driver)
	}
	return drivers, rows.Err()
}
