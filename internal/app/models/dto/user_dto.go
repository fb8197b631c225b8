package dto

import "github.com/smarteredu/portal/internal/app/models"

// CreateUserRequest represents the payload for registering a new user
type CreateUserRequest struct {
	Username string `json:"username" binding:"required" example:"teacher_alice"`
	Email    string `json:"email" binding:"required,email" example:"alice@smarteredu.com"`
	Password string `json:"password" binding:"required,min=1" example:"s3cret"`
	Role     string `json:"role" binding:"omitempty,oneof=student teacher admin" example:"teacher"`
}

// UserResponse represents user data returned by the API. The credential
// field is never part of it.
type UserResponse struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"teacher_alice"`
	Email    string `json:"email" example:"alice@smarteredu.com"`
	Role     string `json:"role" example:"teacher"`
}

// NewUserResponse builds a UserResponse from a user model.
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	}
}

// NewUserListResponse builds the list body for a slice of users.
func NewUserListResponse(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
