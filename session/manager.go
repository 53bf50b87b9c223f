package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	agentone "github.com/agentone/agentone-go"
	"github.com/agentone/agentone-go/api"
)

// Manager owns the single authenticated-session value for the running
// process. It persists the principal and credentials through a Store,
// authenticates through the API client, and reports every operation
// outcome through the Notifier. Collaborators receive an explicit Manager
// handle; there is no ambient singleton.
//
// Invariants: the principal is non-nil exactly while the session is
// authenticated, and credentials are held exactly while a principal is.
type Manager struct {
	api      *api.Client
	store    Store
	notifier agentone.Notifier
	log      *slog.Logger

	mu         sync.RWMutex
	principal  *api.Principal
	creds      Credentials
	loading    bool
	gate       chan struct{}
	generation uint64
}

// ManagerConfig configures a session Manager.
type ManagerConfig struct {
	API      *api.Client
	Store    Store
	Notifier agentone.Notifier // defaults to LogNotifier
	Logger   *slog.Logger      // defaults to slog.Default()
}

// NewManager creates a session manager. The session starts in the loading
// state; call Rehydrate to restore persisted state and clear it.
func NewManager(cfg ManagerConfig) (*Manager, error) {
	if cfg.API == nil || cfg.Store == nil {
		return nil, agentone.ErrInvalidConfig
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = agentone.LogNotifier{Logger: logger}
	}
	return &Manager{
		api:      cfg.API,
		store:    cfg.Store,
		notifier: notifier,
		log:      logger,
		loading:  true,
		gate:     make(chan struct{}),
	}, nil
}

// Rehydrate restores a persisted session at process start. A parse failure
// purges all persisted session keys and leaves the session unauthenticated.
// The loading flag clears once rehydration completes, success or failure;
// route guards must not evaluate before that.
func (m *Manager) Rehydrate(ctx context.Context) error {
	defer m.setLoading(false)

	rawPrincipal, err := m.store.Get(ctx, KeyPrincipal)
	if err != nil {
		if errors.Is(err, agentone.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("read persisted principal: %w", err)
	}
	accessToken, err := m.store.Get(ctx, KeyAccessToken)
	if err != nil {
		if errors.Is(err, agentone.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("read persisted token: %w", err)
	}

	var principal api.Principal
	if err := json.Unmarshal([]byte(rawPrincipal), &principal); err != nil {
		m.purge(ctx)
		m.log.Warn("discarding unreadable persisted session", "error", err)
		return nil
	}

	refreshToken, err := m.store.Get(ctx, KeyRefreshToken)
	if err != nil && !errors.Is(err, agentone.ErrNotFound) {
		return fmt.Errorf("read persisted refresh token: %w", err)
	}

	m.mu.Lock()
	m.principal = &principal
	m.creds = Credentials{AccessToken: accessToken, RefreshToken: refreshToken}
	m.mu.Unlock()

	m.log.Debug("session rehydrated", "user_id", principal.UserID)
	return nil
}

// Login authenticates with the remote system. On success the first returned
// principal becomes the session principal and both tokens are persisted. On
// any failure the prior session is left untouched. Each attempt takes a
// generation token: a response superseded by a newer login or a logout is
// discarded instead of overwriting the fresher state.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.mu.Lock()
	m.generation++
	generation := m.generation
	m.mu.Unlock()
	m.setLoading(true)

	resp, err := m.api.Signin(ctx, email, password)

	if m.superseded(generation) {
		return agentone.ErrLoginSuperseded
	}
	defer m.setLoading(false)

	if err != nil {
		msg := "Network error. Please try again."
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			msg = apiErr.Msg
			if msg == "" {
				msg = "Invalid credentials. Please try again."
			}
		}
		m.notifier.Error(msg)
		m.log.Warn("login failed", "error", err)
		return fmt.Errorf("login: %w", err)
	}
	if len(resp.Data) == 0 {
		msg := resp.Msg
		if msg == "" {
			msg = "Invalid credentials. Please try again."
		}
		m.notifier.Error(msg)
		return fmt.Errorf("login: %w", &api.Error{Status: 200, Msg: msg})
	}

	principal := resp.Data[0]
	creds := newCredentials(resp.AccessToken, resp.RefreshToken, resp.ExpiryDate)

	m.mu.Lock()
	if generation != m.generation {
		m.mu.Unlock()
		return agentone.ErrLoginSuperseded
	}
	m.principal = &principal
	m.creds = creds
	m.mu.Unlock()

	m.persist(ctx, principal, creds)
	m.notifier.Success("Welcome back, " + principal.UserName + "!")
	m.log.Info("login succeeded", "user_id", principal.UserID)
	return nil
}

// Logout clears the in-memory principal and every persisted session key
// unconditionally. Safe to call regardless of authentication state.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.generation++
	m.principal = nil
	m.creds = Credentials{}
	m.mu.Unlock()

	// A login still in flight is superseded by this logout; release its
	// loading gate so guards do not wait on a discarded response.
	m.setLoading(false)
	m.purge(ctx)
	m.notifier.Info("You have been logged out")
	m.log.Info("logged out")
}

// PrincipalPatch is a partial profile update; nil fields keep their
// current value.
type PrincipalPatch struct {
	UserName   *string
	UserEmail  *string
	UserMobile *string
	Gender     *string
	IsActive   *bool
}

// UpdateUser sends the existing-principal-defaulted field set to the
// profile endpoint. Without an authenticated session it fails before any
// request is issued. On success the patch is merged into the in-memory
// principal and re-persisted; on failure state is left untouched.
func (m *Manager) UpdateUser(ctx context.Context, patch PrincipalPatch) error {
	m.mu.RLock()
	current := m.principal
	m.mu.RUnlock()
	if current == nil {
		return agentone.ErrNotAuthenticated
	}

	upd := api.UserUpdate{
		UserID:     current.UserID,
		UserName:   current.UserName,
		UserEmail:  current.UserEmail,
		UserMobile: current.UserMobile,
		Gender:     current.Gender,
		IsActive:   current.IsActive,
	}
	merged := *current
	if patch.UserName != nil {
		upd.UserName = *patch.UserName
		merged.UserName = *patch.UserName
	}
	if patch.UserEmail != nil {
		upd.UserEmail = *patch.UserEmail
		merged.UserEmail = *patch.UserEmail
	}
	if patch.UserMobile != nil {
		upd.UserMobile = *patch.UserMobile
		merged.UserMobile = *patch.UserMobile
	}
	if patch.Gender != nil {
		upd.Gender = *patch.Gender
		merged.Gender = *patch.Gender
	}
	if patch.IsActive != nil {
		upd.IsActive = *patch.IsActive
		merged.IsActive = *patch.IsActive
	}

	if err := m.api.UpdateUser(ctx, upd); err != nil {
		msg := "Network error. Please try again."
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			msg = apiErr.Msg
			if msg == "" {
				msg = "Failed to update profile."
			}
		}
		m.notifier.Error(msg)
		m.log.Warn("profile update failed", "error", err)
		return fmt.Errorf("update user: %w", err)
	}

	m.mu.Lock()
	m.principal = &merged
	m.mu.Unlock()

	if raw, err := json.Marshal(merged); err == nil {
		if err := m.store.Set(ctx, KeyPrincipal, string(raw)); err != nil {
			m.log.Warn("persist principal failed", "error", err)
		}
	}
	m.notifier.Success("Profile updated successfully!")
	return nil
}

// Signup registers a new account. Required fields are validated locally
// before any request is sent.
func (m *Manager) Signup(ctx context.Context, reg api.Registration) error {
	if reg.UserName == "" || reg.UserEmail == "" || reg.UserPwd == "" ||
		reg.UserMobile == "" || reg.Gender == "" {
		m.notifier.Error("Please fill in all required fields.")
		return agentone.ErrMissingFields
	}
	if err := m.api.Signup(ctx, reg); err != nil {
		msg := "Network error. Please try again."
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Msg != "" {
			msg = apiErr.Msg
		}
		m.notifier.Error(msg)
		return fmt.Errorf("signup: %w", err)
	}
	m.notifier.Success("Account created successfully! Please sign in.")
	return nil
}

// Principal returns the signed-in principal, if any.
func (m *Manager) Principal() (api.Principal, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.principal == nil {
		return api.Principal{}, false
	}
	return *m.principal, true
}

// Authenticated reports whether a principal is currently set.
func (m *Manager) Authenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.principal != nil
}

// Loading reports whether rehydration or a login attempt is outstanding.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Credentials returns the in-memory credentials for the current session.
func (m *Manager) Credentials() Credentials {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.creds
}

// loadingGate returns the channel closed when the current loading phase
// ends, plus whether a phase is in progress.
func (m *Manager) loadingGate() (<-chan struct{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gate, m.loading
}

func (m *Manager) setLoading(loading bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loading == loading {
		return
	}
	m.loading = loading
	if loading {
		m.gate = make(chan struct{})
	} else {
		close(m.gate)
	}
}

func (m *Manager) superseded(generation uint64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return generation != m.generation
}

// persist writes the principal and both tokens to the store. Persistence is
// best-effort, like browser local storage: a failed write degrades to an
// in-memory-only session rather than failing the login.
func (m *Manager) persist(ctx context.Context, principal api.Principal, creds Credentials) {
	raw, err := json.Marshal(principal)
	if err != nil {
		m.log.Warn("encode principal failed", "error", err)
		return
	}
	if err := m.store.Set(ctx, KeyPrincipal, string(raw)); err != nil {
		m.log.Warn("persist principal failed", "error", err)
	}
	if err := m.store.Set(ctx, KeyAccessToken, creds.AccessToken); err != nil {
		m.log.Warn("persist access token failed", "error", err)
	}
	if err := m.store.Set(ctx, KeyRefreshToken, creds.RefreshToken); err != nil {
		m.log.Warn("persist refresh token failed", "error", err)
	}
}

// purge deletes every persisted session key.
func (m *Manager) purge(ctx context.Context) {
	_ = m.store.Delete(ctx, KeyPrincipal)
	_ = m.store.Delete(ctx, KeyAccessToken)
	_ = m.store.Delete(ctx, KeyRefreshToken)
}

// Tokens adapts a Store into the API client's token source. The token is
// read fresh from persisted storage on every call, so a rotation by a
// parallel process takes effect on the next request without coordination.
func Tokens(store Store) api.TokenSource {
	return tokenSource{store: store}
}

type tokenSource struct {
	store Store
}

// AccessToken implements api.TokenSource. An absent token is not an error;
// the call simply goes out unauthenticated.
func (t tokenSource) AccessToken(ctx context.Context) (string, error) {
	value, err := t.store.Get(ctx, KeyAccessToken)
	if errors.Is(err, agentone.ErrNotFound) {
		return "", nil
	}
	return value, err
}

// Compile-time check that tokenSource implements api.TokenSource.
var _ api.TokenSource = tokenSource{}
