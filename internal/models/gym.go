package models

import "time"

// GymStatus is the lifecycle state of a gym.
type GymStatus string

const (
	GymActive   GymStatus = "active"
	GymInactive GymStatus = "inactive"
	GymPending  GymStatus = "pending"
)

// Gym is a managed fitness facility.
type Gym struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Status    GymStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateGymRequest is the payload for creating a gym.
type CreateGymRequest struct {
	Name    string    `json:"name"`
	Address string    `json:"address,omitempty"`
	City    string    `json:"city,omitempty"`
	Phone   string    `json:"phone,omitempty"`
	Email   string    `json:"email,omitempty"`
	Status  GymStatus `json:"status,omitempty"`
}

// UpdateGymRequest is the payload for updating a gym.
type UpdateGymRequest struct {
	Name    string    `json:"name,omitempty"`
	Address string    `json:"address,omitempty"`
	City    string    `json:"city,omitempty"`
	Phone   string    `json:"phone,omitempty"`
	Email   string    `json:"email,omitempty"`
	Status  GymStatus `json:"status,omitempty"`
}

// AttachMemberRequest links an existing user to a gym.
type AttachMemberRequest struct {
	UserID int64 `json:"user_id"`
	Role   Role  `json:"role,omitempty"`
}
