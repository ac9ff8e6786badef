package entities

// NotificationPayload is the body posted to the reservation notification
// endpoint. Car is the human-readable "<brand> <model> (<year>)" label.
type NotificationPayload struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Car     string `json:"car" validate:"required"`
	Message string `json:"message"`
}

// Email is one outbound plain-text message, ready for a sender backend.
type Email struct {
	From    string
	To      string
	Subject string
	Body    string
}
