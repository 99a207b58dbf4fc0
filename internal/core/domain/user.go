package domain

import (
	"errors"
	"time"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid access token")
	ErrCredentialMissing  = errors.New("email credential not set")
)

// User models an account that can run bulk sends.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	LinkedinLink string `json:"linkedin_link,omitempty"`
	PasswordHash string `json:"-"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	// EmailCredential holds the SMTP app password sealed with the
	// server-held key. Plaintext never touches storage.
	EmailCredential string    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}
