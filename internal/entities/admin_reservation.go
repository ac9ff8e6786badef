package entities

import (
	"time"

	"congocar/internal/db"
)

// AdminReservation is a reservation joined with its referenced car for the
// admin dashboard listing. Car may be nil if the car was deleted afterwards.
type AdminReservation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Car       *db.Car   `json:"car,omitempty"`
}
