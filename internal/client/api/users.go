package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fitlab/fitadmin/internal/models"
)

// FilterAll is the sentinel consumers pass to mean "no filter". It is
// never sent on the wire; the query parameter is omitted instead.
const FilterAll = "all"

// UsersService maps the /users endpoints.
type UsersService struct {
	c *Client
}

// UserListOptions narrows and pages a user listing. Zero values and the
// FilterAll sentinel are omitted from the outgoing query.
type UserListOptions struct {
	Role   string
	Status string
	Search string
	Page   int
}

func (o UserListOptions) values() url.Values {
	q := url.Values{}
	setFilter(q, "role", o.Role)
	setFilter(q, "status", o.Status)
	setFilter(q, "search", o.Search)
	setPage(q, o.Page)
	return q
}

// setFilter adds a query parameter unless the value is unset or FilterAll.
func setFilter(q url.Values, key, val string) {
	if val != "" && val != FilterAll {
		q.Set(key, val)
	}
}

// setPage adds the page parameter only when a page was requested.
func setPage(q url.Values, page int) {
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
}

// List returns one page of users matching opts.
func (s *UsersService) List(ctx context.Context, opts UserListOptions) (*Page[models.User], error) {
	var page Page[models.User]
	if err := s.c.get(ctx, "/users", opts.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns a single user by id.
func (s *UsersService) Get(ctx context.Context, id int64) (*models.User, error) {
	var res envelope[models.User]
	if err := s.c.get(ctx, fmt.Sprintf("/users/%d", id), nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// Create creates a user and returns the server's record of it.
func (s *UsersService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	var res envelope[models.User]
	if err := s.c.post(ctx, "/users", req, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// Update applies req to the user with the given id.
func (s *UsersService) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error) {
	var res envelope[models.User]
	if err := s.c.put(ctx, fmt.Sprintf("/users/%d", id), req, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// Delete removes the user with the given id.
func (s *UsersService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/users/%d", id))
}

// Roles returns the assignable roles.
func (s *UsersService) Roles(ctx context.Context) ([]models.RoleInfo, error) {
	var res envelope[[]models.RoleInfo]
	if err := s.c.get(ctx, "/roles", nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}
