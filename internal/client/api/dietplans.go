package api

import (
	"context"
	"fmt"

	"github.com/fitlab/fitadmin/internal/models"
)

// DietPlansService maps the meal-plan endpoints nested under diet plans.
type DietPlansService struct {
	c *Client
}

// MealPlans returns every meal attached to a diet plan.
func (s *DietPlansService) MealPlans(ctx context.Context, dietPlanID int64) ([]models.MealPlan, error) {
	var res envelope[[]models.MealPlan]
	if err := s.c.get(ctx, fmt.Sprintf("/diet-plans/%d/meal-plans", dietPlanID), nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// AddMealPlan attaches a meal to a diet plan.
func (s *DietPlansService) AddMealPlan(ctx context.Context, dietPlanID int64, req models.CreateMealPlanRequest) (*models.MealPlan, error) {
	var res envelope[models.MealPlan]
	if err := s.c.post(ctx, fmt.Sprintf("/diet-plans/%d/meal-plans", dietPlanID), req, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// RemoveMealPlan removes a meal from a diet plan.
func (s *DietPlansService) RemoveMealPlan(ctx context.Context, dietPlanID, mealPlanID int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/diet-plans/%d/meal-plans/%d", dietPlanID, mealPlanID))
}
