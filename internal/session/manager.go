// Package session owns the authenticated identity and the credential
// lifecycle: restore on startup, login/signup, logout, and the state
// transitions driven by the gateway's credential renewal.
package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/gateway"
	"github.com/iho/fintrack/internal/infrastructure/metrics"
	"github.com/iho/fintrack/internal/store"
	"github.com/iho/fintrack/internal/wire"
)

// State is the session's position in its lifecycle.
type State string

const (
	Unauthenticated State = "unauthenticated"
	Authenticating  State = "authenticating"
	Authenticated   State = "authenticated"
	Refreshing      State = "refreshing"
)

// Manager is the session manager. It implements gateway.SessionHooks so
// renewal outcomes move the state machine and a terminal failure resets
// the session the same way logout's local half does.
type Manager struct {
	mu      sync.RWMutex
	gw      *gateway.Client
	store   *store.Store
	logger  zerolog.Logger
	metrics *metrics.Metrics

	state   State
	user    *domain.User
	onReset func()
}

// NewManager creates a session manager and registers it as the
// gateway's renewal observer.
func NewManager(gw *gateway.Client, st *store.Store, logger zerolog.Logger, m *metrics.Metrics) *Manager {
	mgr := &Manager{
		gw:      gw,
		store:   st,
		logger:  logger,
		metrics: m,
		state:   Unauthenticated,
	}
	gw.SetHooks(mgr)
	return mgr
}

// OnReset registers the signal fired when the session is torn down
// (logout or terminal renewal failure); the UI layer uses it to return
// to the unauthenticated entry point.
func (m *Manager) OnReset(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onReset = fn
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// User returns the authenticated identity, or nil.
func (m *Manager) User() *domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Restore probes the identity endpoint with a persisted credential. It
// always resolves: on any failure the credential is discarded and the
// session settles in Unauthenticated. It never returns an error.
func (m *Manager) Restore(ctx context.Context) bool {
	if m.gw.Credentials().Token() == "" {
		m.setState(Unauthenticated)
		return false
	}

	m.setState(Authenticating)

	var out wire.MeResponse
	if err := m.gw.Get(ctx, "/auth/me", &out); err != nil {
		m.logger.Debug().Err(err).Msg("session restore failed, discarding credential")
		m.gw.Credentials().Clear()
		m.clearLocked(false)
		return false
	}

	user := out.User.ToDomain()
	m.setAuthenticated(&user)
	m.logger.Info().Str("email", user.Email).Msg("session restored")
	return true
}

// Login exchanges credentials for a new access credential and identity.
// Failures propagate unchanged.
func (m *Manager) Login(ctx context.Context, email, password string) (domain.User, error) {
	return m.authenticate(ctx, "/auth/login", wire.LoginRequest{Email: email, Password: password})
}

// Signup registers a new user and opens a session. Failures propagate
// unchanged.
func (m *Manager) Signup(ctx context.Context, name, email, password string) (domain.User, error) {
	return m.authenticate(ctx, "/auth/signup", wire.SignupRequest{Name: name, Email: email, Password: password})
}

func (m *Manager) authenticate(ctx context.Context, path string, body any) (domain.User, error) {
	m.setState(Authenticating)

	var out wire.AuthResponse
	if err := m.gw.Post(ctx, path, body, &out); err != nil {
		m.setState(Unauthenticated)
		return domain.User{}, err
	}

	m.gw.Credentials().Set(out.AccessToken)
	user := out.User.ToDomain()
	m.setAuthenticated(&user)
	if m.metrics != nil {
		m.metrics.Logins.Inc()
	}
	m.logger.Info().Str("email", user.Email).Msg("session opened")
	return user, nil
}

// Logout attempts a best-effort server-side invalidation, then
// unconditionally clears local state. It always succeeds locally.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.gw.Post(ctx, "/auth/logout", struct{}{}, nil); err != nil {
		m.logger.Debug().Err(err).Msg("server-side logout failed, clearing locally anyway")
	}

	m.gw.Credentials().Clear()
	m.clearLocked(true)
	if m.metrics != nil {
		m.metrics.Logouts.Inc()
	}
	m.logger.Info().Msg("session closed")
}

// RenewalStarted implements gateway.SessionHooks.
func (m *Manager) RenewalStarted() {
	m.setState(Refreshing)
}

// RenewalSucceeded implements gateway.SessionHooks.
func (m *Manager) RenewalSucceeded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user != nil {
		m.state = Authenticated
	} else {
		// Renewal can land before restore resolved the identity.
		m.state = Authenticating
	}
}

// RenewalFailed implements gateway.SessionHooks. The gateway has already
// cleared the credential; the rest of the session is cleared here,
// matching logout's local half.
func (m *Manager) RenewalFailed() {
	m.logger.Warn().Msg("credential renewal failed, session terminated")
	m.clearLocked(true)
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}

func (m *Manager) setAuthenticated(u *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = u
	m.state = Authenticated
}

func (m *Manager) clearLocked(signal bool) {
	m.mu.Lock()
	m.user = nil
	m.state = Unauthenticated
	onReset := m.onReset
	m.mu.Unlock()

	m.store.Reset()
	if signal && onReset != nil {
		onReset()
	}
}
