package model

import "time"

// Role distinguishes back-office operators from regular customers.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole validates a raw role value.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

// User represents a registered customer or administrator.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Address      string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin capability.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
