package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	Id        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  *string    `json:"full_name"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// UpdateProfileRequest is an explicit partial update: a nil field was not
// sent and is left untouched, a non-nil field is written as-is.
type UpdateProfileRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=1"`
}
