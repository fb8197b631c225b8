package dto

// MessageResponse represents a plain informational body, used by the root
// and health endpoints.
type MessageResponse struct {
	Message string `json:"message" example:"Welcome to the Smarter Education API!"`
}
