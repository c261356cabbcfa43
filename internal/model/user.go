package model

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Matches the signup email check applied before persisting a user.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ErrInvalidEmail is returned when an email does not match the expected pattern.
var ErrInvalidEmail = errors.New("Please provide valid email")

// User represents an authenticated user in the system.
// Password holds only the bcrypt hash and is never serialized.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// ValidateEmail checks the email against the schema pattern.
func (u *User) ValidateEmail() error {
	if !emailPattern.MatchString(u.Email) {
		return ErrInvalidEmail
	}
	return nil
}
