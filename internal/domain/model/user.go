package model

import "time"

// Role distinguishes customers from store operators.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered customer of the store.
type User struct {
	ID           int64
	Name         string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin reports whether the user holds the operator role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
