// Package models defines the data contracts exchanged with the platform API.
// All types mirror server shapes; the client never derives or validates
// fields beyond what the server sends.
package models

import "time"

// Role identifies the access level of a platform user.
type Role string

const (
	// RoleAdmin is a platform-wide administrator.
	RoleAdmin Role = "admin"
	// RoleGymAdmin administers a single gym.
	RoleGymAdmin Role = "gym_admin"
	// RoleTrainer is a coaching staff member.
	RoleTrainer Role = "trainer"
	// RoleDietitian manages diet and meal plans.
	RoleDietitian Role = "dietitian"
	// RoleClient is an end customer of a gym.
	RoleClient Role = "client"
)

// UserStatus is the lifecycle state of a user account.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserPending  UserStatus = "pending"
)

// User is the server-defined identity record. It is immutable from the
// client's perspective except via explicit update calls.
type User struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// RoleInfo describes one assignable role as reported by the server.
type RoleInfo struct {
	Value Role   `json:"value"`
	Label string `json:"label"`
}

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone,omitempty"`
	Password string     `json:"password"`
	Role     Role       `json:"role"`
	Status   UserStatus `json:"status,omitempty"`
}

// UpdateUserRequest is the payload for updating a user. Empty fields are
// omitted so the server keeps their current values.
type UpdateUserRequest struct {
	Name   string     `json:"name,omitempty"`
	Email  string     `json:"email,omitempty"`
	Phone  string     `json:"phone,omitempty"`
	Role   Role       `json:"role,omitempty"`
	Status UserStatus `json:"status,omitempty"`
}
