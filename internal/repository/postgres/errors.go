package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lettaaaaa/uklon-service/internal/repository"
)

const uniqueViolation = "23505"

// duplicateByConstraint maps violated unique constraints to the repository
// sentinels. Constraint names match the migration schema.
var duplicateByConstraint = map[string]error{
	"users_username_key":         repository.ErrDuplicateUsername,
	"users_email_key":            repository.ErrDuplicateEmail,
	"drivers_phone_key":          repository.ErrDuplicatePhone,
	"drivers_license_number_key": repository.ErrDuplicateLicense,
	"cars_plate_number_key":      repository.ErrDuplicatePlate,
	"payments_ride_id_key":       repository.ErrDuplicatePayment,
}

// translateError converts pgx-level errors into repository sentinels where a
// mapping exists; anything else passes through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if sentinel, ok := duplicateByConstraint[pgErr.ConstraintName]; ok {
			return sentinel
		}
	}
	return err
}
