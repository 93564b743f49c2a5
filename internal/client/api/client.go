// Package api is the single choke point for every call to the platform
// API. It owns URL construction, header defaults, bearer-token injection,
// JSON coding, and failure normalization, so the per-resource services
// stay declarative.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fitlab/fitadmin/internal/notify"
)

// TokenSource is the read-only view of the credential store the client
// needs. The client never writes the credential; login, logout, and the
// session bootstrap own that.
type TokenSource interface {
	Get() (string, bool)
}

// Client performs HTTP calls against a single configured base origin.
// Construct once with New and share; all methods are safe for concurrent
// use. Unrelated in-flight calls are not ordered with respect to each
// other; callers needing sequencing await completion themselves.
type Client struct {
	baseURL  string
	httpc    *http.Client
	tokens   TokenSource
	notifier notify.Notifier
	log      *zap.Logger

	Auth       *AuthService
	Users      *UsersService
	Gyms       *GymsService
	Plans      *SubscriptionPlansService
	DietPlans  *DietPlansService
	AIConfigs  *AIConfigurationsService
	Assessment *AssessmentService
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// WithTokenSource sets where bearer credentials are read from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithNotifier sets the sink for user-facing failure notifications.
func WithNotifier(n notify.Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

// WithLogger sets the structured logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New returns a Client for the given base origin, e.g.
// "https://api.example.com". The origin must parse as an absolute URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("api: invalid base URL %q: %w", baseURL, err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("api: base URL %q is not absolute", baseURL)
	}

	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		httpc:    http.DefaultClient,
		notifier: notify.Nop{},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthService{c: c}
	c.Users = &UsersService{c: c}
	c.Gyms = &GymsService{c: c}
	c.Plans = &SubscriptionPlansService{c: c}
	c.DietPlans = &DietPlansService{c: c}
	c.AIConfigs = &AIConfigurationsService{c: c}
	c.Assessment = &AssessmentService{c: c}
	return c, nil
}

// do performs one API call. path is server-relative; query may be nil;
// body, when non-nil, is JSON-encoded; out, when non-nil, receives the
// decoded 2xx payload. Empty 2xx bodies leave out untouched.
//
// Every failure path returns an *Error and notifies the user first:
// one notification per field message for validation failures, otherwise
// one for the top-level message, otherwise a generic one. A 401 does not
// clear the stored credential; only logout and the session bootstrap do.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return c.fail(&Error{cause: fmt.Errorf("encode request: %w", err)})
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return c.fail(&Error{cause: err})
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok, ok := c.tokens.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	c.log.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
	)

	res, err := c.httpc.Do(req)
	if err != nil {
		return c.fail(&Error{cause: err})
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return c.fail(&Error{Status: res.StatusCode, cause: err})
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return c.fail(decodeError(res.StatusCode, data))
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return c.fail(&Error{Status: res.StatusCode, cause: fmt.Errorf("decode response: %w", err)})
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// decodeError builds an *Error from a non-2xx body. Bodies that are not
// the standard {"message": ..., "errors": {...}} shape fall back to a
// bare status error.
func decodeError(status int, data []byte) *Error {
	apiErr := &Error{Status: status}
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		apiErr.Message = body.Message
		if len(body.Errors) > 0 {
			apiErr.FieldErrors = body.Errors
		}
	}
	return apiErr
}

// fail notifies the user about apiErr, logs it, and returns it.
func (c *Client) fail(apiErr *Error) error {
	switch {
	case apiErr.IsValidation():
		for _, field := range apiErr.fields() {
			for _, msg := range apiErr.FieldErrors[field] {
				c.notifier.Error(msg)
			}
		}
	case apiErr.Message != "":
		c.notifier.Error(apiErr.Message)
	default:
		c.notifier.Error("An unexpected error occurred")
	}

	c.log.Warn("api call failed",
		zap.Int("status", apiErr.Status),
		zap.Error(apiErr),
	)
	return apiErr
}

// AsError unwraps err into the normalized API error shape.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
