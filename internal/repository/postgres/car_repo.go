package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lettaaaaa/uklon-service/internal/domain/entities"
	"github.com/lettaaaaa/uklon-service/internal/repository"
)

type CarRepository struct {
	pool *pgxpool.Pool
}

func NewCarRepository(pool *pgxpool.Pool) *CarRepository {
	return &CarRepository{pool: pool}
}

func (r *CarRepository) Create(ctx context.Context, car *entities.Car) error {
	query := `
		INSERT INTO cars (driver_id, model, plate_number, color, year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		car.DriverID,
		car.Model,
		car.PlateNumber,
		car.Color,
		car.Year,
		car.CreatedAt,
	).Scan(&car.ID)
	if err != nil {
		if translated := translateError(err); translated != err {
			return translated
		}
		return fmt.Errorf("insert car: %w", err)
	}
	return nil
}

func (r *CarRepository) GetByID(ctx context.Context, id int64) (*entities.Car, error) {
	query := `
		SELECT id, driver_id, model, plate_number, color, year, created_at
		FROM cars
		WHERE id = $1
	`
	var car entities.Car
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&car.ID,
		&car.DriverID,
		&car.Model,
		&car.PlateNumber,
		&car.Color,
		&car.Year,
		&car.CreatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &car, nil
}

func (r *CarRepository) List(ctx context.Context, page repository.Page) ([]*entities.Car, error) {
	query := `
		SELECT id, driver_id, model, plate_number, color, year, created_at
		FROM cars
		ORDER BY id
		OFFSET $1 LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()

	cars := []*entities.Car{}
	for rows.Next() {
		var car entities.Car
		if err := rows.Scan(
			&car.ID,
			&car.DriverID,
			&car.Model,
			&car.PlateNumber,
			&car.Color,
			&car.Year,
			&car.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		cars = append(cars, &car)
	}
	return cars, rows.Err()
}
