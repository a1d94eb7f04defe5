package models

import (
	"encoding/json"
	"time"
)

const (
	UserTypeFarmer = "farmer"
	UserTypeBuyer  = "buyer"
)

// User is a marketplace account. The password hash never leaves the process.
type User struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	PasswordHash   string          `json:"-"`
	UserType       string          `json:"userType"`
	AdditionalInfo json.RawMessage `json:"additionalInfo"`
	CreatedAt      time.Time       `json:"createdAt"`
}
