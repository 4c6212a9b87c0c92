package handler

import (
	"time"

	"github.com/wachwerk/staffdesk/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=ADMIN USER"`
}

// userResponse is the public view of an account. The credential hash never
// appears here.
type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

type deletedResponse struct {
	Message string `json:"message"`
}

type createShiftRequest struct {
	UserID    string    `json:"user_id"    validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time"   validate:"required"`
	Location  string    `json:"location"   validate:"required"`
}

type shiftResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	OwnerName string    `json:"owner_name,omitempty"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

type createMessageRequest struct {
	Content string `json:"content" validate:"required"`
	UserID  string `json:"user_id"`
}

type messageResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type uploadResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	OwnerName  string    `json:"owner_name,omitempty"`
	Filename   string    `json:"filename"`
	StorageURL string    `json:"storage_url"`
	CreatedAt  time.Time `json:"created_at"`
}
