package entities

import "time"

// Car belongs to exactly one driver. Color and year are optional.
type Car struct {
	ID          int64     `json:"id"`
	DriverID    int64     `json:"driver_id"`
	Model       string    `json:"model"`
	PlateNumber string    `json:"plate_number"`
	Color       *string   `json:"color,omitempty"`
	Year        *int      `json:"year,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCar(driverID int64, model, plateNumber string, color *string, year *int) *Car {
	return &Car{
		DriverID:    driverID,
		Model:       model,
		PlateNumber: plateNumber,
		Color:       color,
		Year:        year,
		CreatedAt:   time.Now().UTC(),
	}
}
