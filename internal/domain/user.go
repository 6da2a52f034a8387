package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
)

// User is the identity snapshot carried in a session and returned by
// the users API. Field names follow the backend's wire format.
type User struct {
	ID             string `json:"_id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	IsAdmin        bool   `json:"isAdmin"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}
