package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fitlab/fitadmin/internal/models"
)

// SubscriptionPlansService maps the /subscription-plans endpoints.
type SubscriptionPlansService struct {
	c *Client
}

// PlanListOptions narrows and pages a plan listing.
type PlanListOptions struct {
	Status string
	Page   int
}

func (o PlanListOptions) values() url.Values {
	q := url.Values{}
	setFilter(q, "status", o.Status)
	setPage(q, o.Page)
	return q
}

// List returns one page of subscription plans matching opts.
func (s *SubscriptionPlansService) List(ctx context.Context, opts PlanListOptions) (*Page[models.SubscriptionPlan], error) {
	var page Page[models.SubscriptionPlan]
	if err := s.c.get(ctx, "/subscription-plans", opts.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns a single plan by id.
func (s *SubscriptionPlansService) Get(ctx context.Context, id int64) (*models.SubscriptionPlan, error) {
	var res envelope[models.SubscriptionPlan]
	if err := s.c.get(ctx, fmt.Sprintf("/subscription-plans/%d", id), nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// Create creates a plan.
func (s *SubscriptionPlansService) Create(ctx context.Context, req models.CreatePlanRequest) (*models.SubscriptionPlan, error) {
	var res envelope[models.SubscriptionPlan]
	if err := s.c.post(ctx, "/subscription-plans", req, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// Update applies req to the plan with the given id.
func (s *SubscriptionPlansService) Update(ctx context.Context, id int64, req models.UpdatePlanRequest) (*models.SubscriptionPlan, error) {
	var res envelope[models.SubscriptionPlan]
	if err := s.c.put(ctx, fmt.Sprintf("/subscription-plans/%d", id), req, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// Delete removes the plan with the given id.
func (s *SubscriptionPlansService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/subscription-plans/%d", id))
}
