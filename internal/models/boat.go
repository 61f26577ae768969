package models

import "time"

// Boat status values
const (
	BoatStatusActive      = "active"
	BoatStatusMaintenance = "maintenance"
)

type Boat struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	OwnerName string    `json:"owner_name"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes"`
	Status    string    `json:"status"` // active or maintenance
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateBoatRequest represents the request body for registering a boat
type CreateBoatRequest struct {
	Name      string `json:"name"`
	OwnerName string `json:"owner_name"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
	ImageURL  string `json:"image_url"`
}

// UpdateBoatRequest represents the request body for editing a boat.
// Nil fields are left untouched (partial merge).
type UpdateBoatRequest struct {
	Name      *string `json:"name,omitempty"`
	OwnerName *string `json:"owner_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	Status    *string `json:"status,omitempty"`
	ImageURL  *string `json:"image_url,omitempty"`
}
