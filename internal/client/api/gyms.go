package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fitlab/fitadmin/internal/models"
)

// GymsService maps the /gyms endpoints, including gym membership.
type GymsService struct {
	c *Client
}

// GymListOptions narrows and pages a gym listing.
type GymListOptions struct {
	Status string
	Search string
	Page   int
}

func (o GymListOptions) values() url.Values {
	q := url.Values{}
	setFilter(q, "status", o.Status)
	setFilter(q, "search", o.Search)
	setPage(q, o.Page)
	return q
}

// MemberListOptions narrows and pages a gym's member listing.
type MemberListOptions struct {
	Role string
	Page int
}

func (o MemberListOptions) values() url.Values {
	q := url.Values{}
	setFilter(q, "role", o.Role)
	setPage(q, o.Page)
	return q
}

// List returns one page of gyms matching opts.
func (s *GymsService) List(ctx context.Context, opts GymListOptions) (*Page[models.Gym], error) {
	var page Page[models.Gym]
	if err := s.c.get(ctx, "/gyms", opts.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns a single gym by id.
func (s *GymsService) Get(ctx context.Context, id int64) (*models.Gym, error) {
	var res envelope[models.Gym]
	if err := s.c.get(ctx, fmt.Sprintf("/gyms/%d", id), nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// Create creates a gym.
func (s *GymsService) Create(ctx context.Context, req models.CreateGymRequest) (*models.Gym, error) {
	var res envelope[models.Gym]
	if err := s.c.post(ctx, "/gyms", req, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// Update applies req to the gym with the given id.
func (s *GymsService) Update(ctx context.Context, id int64, req models.UpdateGymRequest) (*models.Gym, error) {
	var res envelope[models.Gym]
	if err := s.c.put(ctx, fmt.Sprintf("/gyms/%d", id), req, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// Delete removes the gym with the given id.
func (s *GymsService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/gyms/%d", id))
}

// Members returns one page of users attached to a gym.
func (s *GymsService) Members(ctx context.Context, gymID int64, opts MemberListOptions) (*Page[models.User], error) {
	var page Page[models.User]
	if err := s.c.get(ctx, fmt.Sprintf("/gyms/%d/users", gymID), opts.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// AddMember attaches an existing user to a gym.
func (s *GymsService) AddMember(ctx context.Context, gymID int64, req models.AttachMemberRequest) (*models.User, error) {
	var res envelope[models.User]
	if err := s.c.post(ctx, fmt.Sprintf("/gyms/%d/users", gymID), req, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// RemoveMember detaches a user from a gym.
func (s *GymsService) RemoveMember(ctx context.Context, gymID, userID int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/gyms/%d/users/%d", gymID, userID))
}
