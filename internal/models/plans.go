package models

import "time"

// PlanStatus is the lifecycle state of a subscription plan.
type PlanStatus string

const (
	PlanActive   PlanStatus = "active"
	PlanArchived PlanStatus = "archived"
)

// SubscriptionPlan is a purchasable membership tier.
type SubscriptionPlan struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	PriceCents   int64      `json:"price_cents"`
	Currency     string     `json:"currency"`
	DurationDays int        `json:"duration_days"`
	Status       PlanStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CreatePlanRequest is the payload for creating a subscription plan.
type CreatePlanRequest struct {
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	PriceCents   int64      `json:"price_cents"`
	Currency     string     `json:"currency"`
	DurationDays int        `json:"duration_days"`
	Status       PlanStatus `json:"status,omitempty"`
}

// UpdatePlanRequest is the payload for updating a subscription plan.
type UpdatePlanRequest struct {
	Name         string     `json:"name,omitempty"`
	Description  string     `json:"description,omitempty"`
	PriceCents   int64      `json:"price_cents,omitempty"`
	Currency     string     `json:"currency,omitempty"`
	DurationDays int        `json:"duration_days,omitempty"`
	Status       PlanStatus `json:"status,omitempty"`
}

// MealType slots a meal plan entry into the day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealPlan is a single meal entry inside a diet plan.
type MealPlan struct {
	ID         int64     `json:"id"`
	DietPlanID int64     `json:"diet_plan_id"`
	Name       string    `json:"name"`
	Type       MealType  `json:"type"`
	Calories   int       `json:"calories,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateMealPlanRequest is the payload for adding a meal to a diet plan.
type CreateMealPlanRequest struct {
	Name     string   `json:"name"`
	Type     MealType `json:"type"`
	Calories int      `json:"calories,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}
