// Package session owns the client-side authentication state. All
// transitions between unknown, authenticated, and anonymous funnel
// through the Manager, so the authenticated flag and the current user are
// never observed out of sync.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/fitlab/fitadmin/internal/models"
)

// State is the session's position in its three-state machine.
type State int

const (
	// StateUnknown is the initial state, before the stored credential has
	// been confirmed or ruled out.
	StateUnknown State = iota
	// StateAuthenticated means the server has confirmed the credential
	// since this process started.
	StateAuthenticated
	// StateAnonymous means no usable credential exists.
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// AuthAPI is the slice of the API client the Manager drives.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

// TokenStore is the credential cell the Manager reads and writes.
type TokenStore interface {
	Get() (string, bool)
	Set(tok string) error
	Clear() error
}

// Snapshot is a consistent read of the session. User is nil unless
// Authenticated is true; Loading is true only while a stored credential is
// being confirmed.
type Snapshot struct {
	User          *models.User
	Authenticated bool
	Loading       bool
}

// Manager holds the session state machine. Safe for concurrent use.
type Manager struct {
	auth   AuthAPI
	tokens TokenStore
	log    *zap.Logger

	mu      sync.Mutex
	state   State
	user    *models.User
	loading bool
}

// NewManager returns a Manager in StateUnknown. Call Bootstrap once before
// reading the session.
func NewManager(auth AuthAPI, tokens TokenStore, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{auth: auth, tokens: tokens, log: log, state: StateUnknown}
}

// State returns the current machine state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Current returns a consistent snapshot of the session.
func (m *Manager) Current() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Authenticated: m.state == StateAuthenticated,
		Loading:       m.loading,
	}
	if m.user != nil {
		u := *m.user
		snap.User = &u
	}
	return snap
}

// Bootstrap resolves the initial state. Without a stored credential the
// session goes straight to anonymous. With one, a single "who am I" call
// decides: confirmed means authenticated, any failure clears the stale
// credential and lands on anonymous. The call is not retried.
func (m *Manager) Bootstrap(ctx context.Context) error {
	if _, ok := m.tokens.Get(); !ok {
		m.transition(StateAnonymous, nil)
		return nil
	}

	m.setLoading(true)
	user, err := m.auth.Me(ctx)
	m.setLoading(false)

	if err != nil {
		m.log.Info("stored credential rejected, clearing", zap.Error(err))
		if cerr := m.tokens.Clear(); cerr != nil {
			m.log.Warn("failed to clear credential", zap.Error(cerr))
		}
		m.transition(StateAnonymous, nil)
		return err
	}

	m.transition(StateAuthenticated, user)
	return nil
}

// Login authenticates with the given credentials. On success the returned
// token is persisted and the session becomes authenticated; on failure the
// session is left exactly as it was and the error propagates.
func (m *Manager) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	res, err := m.auth.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := m.tokens.Set(res.Token); err != nil {
		return nil, err
	}
	user := res.User
	m.transition(StateAuthenticated, &user)
	m.log.Info("logged in", zap.String("email", user.Email))
	return &user, nil
}

// Register creates an account and signs it in, symmetric to Login.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	res, err := m.auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := m.tokens.Set(res.Token); err != nil {
		return nil, err
	}
	user := res.User
	m.transition(StateAuthenticated, &user)
	m.log.Info("registered", zap.String("email", user.Email))
	return &user, nil
}

// Logout ends the session. The remote call is best-effort; the local
// credential is cleared and the session becomes anonymous regardless,
// since ending the local session is the point.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.auth.Logout(ctx); err != nil {
		m.log.Warn("remote logout failed", zap.Error(err))
	}
	if err := m.tokens.Clear(); err != nil {
		m.log.Warn("failed to clear credential", zap.Error(err))
	}
	m.transition(StateAnonymous, nil)
}

func (m *Manager) transition(to State, user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	from := m.state
	m.state = to
	m.user = user
	if from != to {
		m.log.Debug("session transition",
			zap.Stringer("from", from),
			zap.Stringer("to", to),
		)
	}
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}
