package entities

import "time"

const DefaultDriverRating = 5.0

// Driver is a registered driver. Phone and license number are unique across
// all drivers; uniqueness is enforced by the store, not checked here.
type Driver struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	LicenseNumber string    `json:"license_number"`
	Rating        float64   `json:"rating"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewDriver creates a Driver with the default rating and marked available.
func NewDriver(name, phone, licenseNumber string) *Driver {
	return &Driver{
		Name:          name,
		Phone:         phone,
		LicenseNumber: licenseNumber,
		Rating:        DefaultDriverRating,
		IsAvailable:   true,
		CreatedAt:     time.Now().UTC(),
	}
}
