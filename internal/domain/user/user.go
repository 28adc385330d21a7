package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/linkdeck/backend/internal/id"
)

// User is an admin account that may mutate the organizer.
type User struct {
	ID           string
	Username     string
	PasswordHash string
}

// New creates a User with a bcrypt-hashed password.
func New(username, password string) (*User, error) {
	if username == "" {
		return nil, errors.New("username is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:           id.GenerateID(),
		Username:     username,
		PasswordHash: string(hash),
	}, nil
}

// CheckPassword reports whether the given password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
