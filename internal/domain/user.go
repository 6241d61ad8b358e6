package domain

import "time"

// Role represents a user role
type Role struct {
	ID          int64
	Name        string
	Description *string
}

// User represents an account in the system
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	PasswordHash string
	RoleID       int64
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
