package dto

import (
	"encoding/json"
	"time"
)

type SignupRequest struct {
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Password       string          `json:"password"`
	UserType       string          `json:"userType"`
	AdditionalInfo json.RawMessage `json:"additionalInfo"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// UserResponse is the sanitized user record: everything but the password hash.
type UserResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	UserType       string          `json:"userType"`
	AdditionalInfo json.RawMessage `json:"additionalInfo"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
