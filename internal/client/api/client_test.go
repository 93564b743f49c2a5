package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-chi/chi/v5"
)

// staticTokens is a TokenSource holding a fixed credential.
type staticTokens struct {
	tok string
}

func (s staticTokens) Get() (string, bool) { return s.tok, s.tok != "" }

// mutableTokens is a TokenSource whose credential tests can observe.
type mutableTokens struct {
	tok string
}

func (m *mutableTokens) Get() (string, bool) { return m.tok, m.tok != "" }

// recordingNotifier captures every notification for assertions.
type recordingNotifier struct {
	successes []string
	errors    []string
	infos     []string
}

func (r *recordingNotifier) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recordingNotifier) Error(msg string)   { r.errors = append(r.errors, msg) }
func (r *recordingNotifier) Info(msg string)    { r.infos = append(r.infos, msg) }

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c, srv
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"relative", "/api"},
		{"empty", ""},
		{"garbage", "://nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.url); err == nil {
				t.Errorf("expected error for base URL %q", tt.url)
			}
		})
	}
}

func TestAuthorizationHeader(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantHeader string
	}{
		{"with credential", "tok-123", "Bearer tok-123"},
		{"without credential", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAuth string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{}`))
			})
			c, _ := newTestClient(t, handler, WithTokenSource(staticTokens{tok: tt.token}))

			if err := c.get(context.Background(), "/ping", nil, nil); err != nil {
				t.Fatalf("get failed: %v", err)
			}
			if gotAuth != tt.wantHeader {
				t.Errorf("Authorization = %q, want %q", gotAuth, tt.wantHeader)
			}
		})
	}
}

func TestDefaultHeaders(t *testing.T) {
	var accept, contentType, requestID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		contentType = r.Header.Get("Content-Type")
		requestID = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusNoContent)
	})
	c, _ := newTestClient(t, handler, WithTokenSource(staticTokens{}))

	if err := c.post(context.Background(), "/ping", map[string]string{"a": "b"}, nil); err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if accept != "application/json" {
		t.Errorf("Accept = %q", accept)
	}
	if contentType != "application/json" {
		t.Errorf("Content-Type = %q", contentType)
	}
	if requestID == "" {
		t.Error("expected an X-Request-ID header")
	}
}

func TestEmptyBody_LeavesOutZero(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	c, _ := newTestClient(t, handler, WithTokenSource(staticTokens{}))

	var out struct {
		Name string `json:"name"`
	}
	if err := c.get(context.Background(), "/empty", nil, &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if out.Name != "" {
		t.Errorf("expected zero payload, got %+v", out)
	}
}

func TestGet_Idempotent(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/items", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":1,"name":"a"},{"id":2,"name":"b"}]}`))
	})
	c, _ := newTestClient(t, r, WithTokenSource(staticTokens{tok: "t"}))

	type item struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	var first, second envelope[[]item]
	if err := c.get(context.Background(), "/items", nil, &first); err != nil {
		t.Fatalf("first get failed: %v", err)
	}
	if err := c.get(context.Background(), "/items", nil, &second); err != nil {
		t.Fatalf("second get failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("payloads differ: %+v vs %+v", first, second)
	}
}

func TestErrorNormalization(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		wantMessage     string
		wantFieldErrors map[string][]string
		wantNotices     []string
	}{
		{
			name:        "top-level message",
			status:      http.StatusForbidden,
			body:        `{"message":"Not authorized"}`,
			wantMessage: "Not authorized",
			wantNotices: []string{"Not authorized"},
		},
		{
			name:            "single field error",
			status:          http.StatusUnprocessableEntity,
			body:            `{"errors":{"email":["Email already taken"]}}`,
			wantFieldErrors: map[string][]string{"email": {"Email already taken"}},
			wantNotices:     []string{"Email already taken"},
		},
		{
			name:   "multi field errors notify per message",
			status: http.StatusUnprocessableEntity,
			body:   `{"message":"Validation failed","errors":{"email":["Email already taken"],"name":["Name is required","Name is too short"]}}`,
			wantFieldErrors: map[string][]string{
				"email": {"Email already taken"},
				"name":  {"Name is required", "Name is too short"},
			},
			wantMessage: "Validation failed",
			wantNotices: []string{"Email already taken", "Name is required", "Name is too short"},
		},
		{
			name:        "no usable body",
			status:      http.StatusInternalServerError,
			body:        `boom`,
			wantNotices: []string{"An unexpected error occurred"},
		},
		{
			name:        "empty body",
			status:      http.StatusNotFound,
			body:        ``,
			wantNotices: []string{"An unexpected error occurred"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			rec := &recordingNotifier{}
			c, _ := newTestClient(t, handler,
				WithTokenSource(staticTokens{}),
				WithNotifier(rec),
			)

			err := c.get(context.Background(), "/fail", nil, nil)
			if err == nil {
				t.Fatal("expected an error")
			}
			apiErr, ok := AsError(err)
			if !ok {
				t.Fatalf("expected *Error, got %T", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("Status = %d, want %d", apiErr.Status, tt.status)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
			if !reflect.DeepEqual(apiErr.FieldErrors, tt.wantFieldErrors) {
				t.Errorf("FieldErrors = %v, want %v", apiErr.FieldErrors, tt.wantFieldErrors)
			}
			if !reflect.DeepEqual(rec.errors, tt.wantNotices) {
				t.Errorf("notifications = %v, want %v", rec.errors, tt.wantNotices)
			}
		})
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // nothing is listening anymore

	rec := &recordingNotifier{}
	c, err := New(url, WithTokenSource(staticTokens{}), WithNotifier(rec))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	err = c.get(context.Background(), "/unreachable", nil, nil)
	apiErr, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Status != 0 {
		t.Errorf("transport failure should carry no HTTP status, got %d", apiErr.Status)
	}
	if apiErr.IsValidation() {
		t.Error("transport failure must not carry field errors")
	}
	if len(rec.errors) != 1 || rec.errors[0] != "An unexpected error occurred" {
		t.Errorf("expected one generic notification, got %v", rec.errors)
	}
}

func TestMalformedJSON_IsError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [truncated`))
	})
	rec := &recordingNotifier{}
	c, _ := newTestClient(t, handler, WithTokenSource(staticTokens{}), WithNotifier(rec))

	var out json.RawMessage
	err := c.get(context.Background(), "/bad-json", nil, &out)
	if _, ok := AsError(err); !ok {
		t.Fatalf("expected *Error for malformed body, got %v", err)
	}
	if len(rec.errors) != 1 {
		t.Errorf("expected one notification, got %v", rec.errors)
	}
}

func TestUnauthorized_DoesNotClearCredential(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Unauthenticated."}`))
	})
	source := &mutableTokens{tok: "stale"}
	c, _ := newTestClient(t, handler, WithTokenSource(source))

	err := c.get(context.Background(), "/protected", nil, nil)
	apiErr, ok := AsError(err)
	if !ok || !apiErr.IsUnauthorized() {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	// The credential is untouched; only logout and the session bootstrap
	// may clear it.
	if tok, ok := source.Get(); !ok || tok != "stale" {
		t.Error("credential must survive a 401 response")
	}
}

func TestPage_HasMore(t *testing.T) {
	if (PageMeta{CurrentPage: 1, LastPage: 3}).HasMore() != true {
		t.Error("expected more pages")
	}
	if (PageMeta{CurrentPage: 3, LastPage: 3}).HasMore() != false {
		t.Error("expected no more pages")
	}
}
