package entities

// Reservation
type ReservationRequest struct {
	CarID   string `json:"car_id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message"`
}

type ReservationResponse struct {
	ReservationID string `json:"reservation_id"`
	Message       string `json:"message"`
}

// Car (admin create/update). Status is optional on create and defaults to "Disponible".
type CarRequest struct {
	Brand       string `json:"brand" validate:"required"`
	Model       string `json:"model" validate:"required"`
	Year        int    `json:"year" validate:"required"`
	Price       int    `json:"price" validate:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Status      string `json:"status" validate:"omitempty,oneof=Disponible Vendu"`
}

// Contact form
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Auth
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Username string `json:"username" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
