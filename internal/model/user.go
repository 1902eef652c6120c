package model

import (
	"time"

	"github.com/google/uuid"
)

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// User is an account that owns words.
type User struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name             string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"name"`
	Email            string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash     string    `gorm:"not null" json:"-"`
	RemindersEnabled bool      `gorm:"not null" json:"reminders_enabled"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse is the public view of a user.
type UserResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	RemindersEnabled bool      `json:"reminders_enabled"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		UserID:           u.UserID,
		Name:             u.Name,
		Email:            u.Email,
		RemindersEnabled: u.RemindersEnabled,
		CreatedAt:        u.CreatedAt,
	}
}
