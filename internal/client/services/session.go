// Package services contains the application services of the storefront
// client. SessionManager is the single authority over the login session.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/kv"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// Store keys owned by the session manager.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// FailureMessage is the user-facing text of every failed login.
const FailureMessage = "authentication failed"

// DefaultProfileUserID is the profile fetched after login when the token
// does not name one.
const DefaultProfileUserID = 1

// Option configures a SessionManager.
type Option func(*SessionManager)

// WithProfileUserID sets the profile id fetched after login.
func WithProfileUserID(id int) Option {
	return func(m *SessionManager) {
		if id > 0 {
			m.profileID = id
		}
	}
}

// WithProfileFromToken makes login fetch the profile named by the token's
// subject instead of the fixed profile id.
func WithProfileFromToken(on bool) Option {
	return func(m *SessionManager) { m.fromToken = on }
}

// SessionManager owns the session state and the store's auth keys.
// It is safe for concurrent use; overlapping operations get ErrBusy.
type SessionManager struct {
	client client.Client
	store  kv.Repository
	log    logging.Logger

	profileID int
	fromToken bool

	mu        sync.Mutex
	user      *models.User
	token     string
	status    models.Status
	lastError string
	restoring bool

	subs    map[int]func(models.Snapshot)
	nextSub int
}

// NewSessionManager builds an anonymous (Idle) session.
func NewSessionManager(c client.Client, store kv.Repository, log logging.Logger, opts ...Option) *SessionManager {
	m := &SessionManager{
		client:    c,
		store:     store,
		log:       log.With("component", "session"),
		profileID: DefaultProfileUserID,
		subs:      make(map[int]func(models.Snapshot)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Snapshot returns a copy of the current state.
func (m *SessionManager) Snapshot() models.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *SessionManager) snapshotLocked() models.Snapshot {
	return models.Snapshot{
		User:      m.user.Clone(),
		Token:     m.token,
		Status:    m.status,
		LastError: m.lastError,
	}
}

// Subscribe registers fn to be called after every state change.
// fn runs on the goroutine that made the change, outside the manager lock.
func (m *SessionManager) Subscribe(fn func(models.Snapshot)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// update applies fn under the lock and, unless fn fails, notifies
// subscribers with the resulting state.
func (m *SessionManager) update(fn func() error) (models.Snapshot, error) {
	m.mu.Lock()
	if err := fn(); err != nil {
		m.mu.Unlock()
		return models.Snapshot{}, err
	}
	snap := m.snapshotLocked()
	subs := make([]func(models.Snapshot), 0, len(m.subs))
	for _, s := range m.subs {
		subs = append(subs, s)
	}
	m.mu.Unlock()

	for _, s := range subs {
		s(snap)
	}
	return snap, nil
}

// busyLocked reports whether any session operation holds the manager.
func (m *SessionManager) busyLocked() bool {
	return m.status.Busy() || m.restoring
}

// begin moves the session into the busy state, or returns ErrBusy.
func (m *SessionManager) begin() error {
	_, err := m.update(func() error {
		if m.busyLocked() {
			return ErrBusy
		}
		m.status = models.StatusAuthenticating
		m.lastError = ""
		return nil
	})
	return err
}

// Restore loads a prior session from the store. A missing, partial or
// unreadable session leaves the manager Idle and is not an error.
func (m *SessionManager) Restore(ctx context.Context) error {
	m.mu.Lock()
	if m.busyLocked() {
		m.mu.Unlock()
		return ErrBusy
	}
	// held until the stored session is applied; Login and Logout get ErrBusy
	m.restoring = true
	m.mu.Unlock()

	user, token, err := m.readStored(ctx)
	if err != nil {
		m.log.Warn(ctx, "restore: no usable session", "op", "restore", "kind", Classify(err).String(), "error", err)
	}

	if user != nil {
		m.client.SetToken(token)
	}

	snap, _ := m.update(func() error {
		m.restoring = false
		if user != nil {
			m.user, m.token, m.status = user, token, models.StatusAuthenticated
		} else {
			m.user, m.token, m.status = nil, "", models.StatusIdle
		}
		m.lastError = ""
		return nil
	})

	m.log.Info(ctx, "session restored", "op", "restore", "status", snap.Status.String())
	return nil
}

// readStored returns the persisted session, or a nil user when either key
// is absent or the user record is unusable.
func (m *SessionManager) readStored(ctx context.Context) (*models.User, string, error) {
	token, err := m.store.Get(ctx, TokenKey)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrStore, err)
	}
	raw, err := m.store.Get(ctx, UserKey)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrStore, err)
	}
	if len(token) == 0 || raw == nil {
		return nil, "", nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, "", fmt.Errorf("%w: decode user: %w", ErrStore, err)
	}
	if user.ID == 0 {
		return nil, "", fmt.Errorf("%w: stored user has no id", ErrStore)
	}
	return &user, string(token), nil
}

// Login authenticates against the remote service, persists the token and
// then the profile, and moves the session to Authenticated. On failure the
// session is Failed with LastError set, the prior user and token stay in
// memory, and the store's auth keys are put back as they were.
func (m *SessionManager) Login(ctx context.Context, username string, password []byte) error {
	if err := m.begin(); err != nil {
		return err
	}
	log := m.log.With("op", "login")
	log.Info(ctx, "login started", "status", models.StatusAuthenticating.String())

	user, token, err := m.login(ctx, log, username, password)
	if err != nil {
		// The prior user stays in memory next to StatusFailed: the only state
		// where User is set outside Authenticated.
		snap, _ := m.update(func() error {
			m.status = models.StatusFailed
			m.lastError = FailureMessage
			return nil
		})
		log.Warn(ctx, "login failed", "status", snap.Status.String(), "kind", Classify(err).String(), "error", err)
		return err
	}

	m.client.SetToken(token)
	snap, _ := m.update(func() error {
		m.user, m.token = user, token
		m.status = models.StatusAuthenticated
		m.lastError = ""
		return nil
	})
	log.Info(ctx, "login finished", "status", snap.Status.String(), "user_id", user.ID)
	return nil
}

func (m *SessionManager) login(ctx context.Context, log logging.Logger, username string, password []byte) (*models.User, string, error) {
	token, err := m.client.Login(ctx, username, password)
	if err != nil {
		return nil, "", fmt.Errorf("login request: %w", err)
	}

	prev, err := m.snapshotStore(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("persist token: %w", err)
	}

	if err := m.store.Set(ctx, TokenKey, []byte(token)); err != nil {
		return nil, "", m.rollback(ctx, log, prev, fmt.Errorf("persist token: %w: %w", ErrStore, err))
	}

	id := m.profileID
	if m.fromToken {
		id = client.ProfileSubject(token, m.profileID)
	}

	user, err := m.client.GetUser(ctx, id)
	if err != nil {
		return nil, "", m.rollback(ctx, log, prev, fmt.Errorf("fetch profile: %w", err))
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return nil, "", m.rollback(ctx, log, prev, fmt.Errorf("persist user: %w", err))
	}
	if err := m.store.Set(ctx, UserKey, raw); err != nil {
		return nil, "", m.rollback(ctx, log, prev, fmt.Errorf("persist user: %w: %w", ErrStore, err))
	}

	return user, token, nil
}

// storedAuth holds the raw store contents of the auth keys; nil means absent.
type storedAuth struct {
	token []byte
	user  []byte
}

func (m *SessionManager) snapshotStore(ctx context.Context) (storedAuth, error) {
	var s storedAuth
	var err error
	if s.token, err = m.store.Get(ctx, TokenKey); err != nil {
		return s, fmt.Errorf("%w: %w", ErrStore, err)
	}
	if s.user, err = m.store.Get(ctx, UserKey); err != nil {
		return s, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return s, nil
}

// rollback puts the auth keys back to prev and returns cause, joined with
// any rollback failure.
func (m *SessionManager) rollback(ctx context.Context, log logging.Logger, prev storedAuth, cause error) error {
	// the login's own context may be the reason we are here
	ctx = context.WithoutCancel(ctx)

	var errs []error
	var gone []string
	for _, kvp := range []struct {
		key   string
		value []byte
	}{{TokenKey, prev.token}, {UserKey, prev.user}} {
		if kvp.value == nil {
			gone = append(gone, kvp.key)
			continue
		}
		if err := m.store.Set(ctx, kvp.key, kvp.value); err != nil {
			errs = append(errs, err)
		}
	}
	if len(gone) > 0 {
		if err := m.store.Delete(ctx, gone...); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) == 0 {
		return cause
	}
	rbErr := fmt.Errorf("rollback: %w: %w", ErrStore, errors.Join(errs...))
	log.Error(ctx, "rollback failed", "error", rbErr)
	return errors.Join(cause, rbErr)
}

// Logout clears the session. Store failures are logged and do not keep
// the session from becoming Idle. Calling it while anonymous is a no-op
// success.
func (m *SessionManager) Logout(ctx context.Context) error {
	if err := m.begin(); err != nil {
		return err
	}
	log := m.log.With("op", "logout")

	if err := m.store.Delete(ctx, TokenKey, UserKey); err != nil {
		err = fmt.Errorf("%w: %w", ErrStore, err)
		log.Error(ctx, "failed to remove stored session", "kind", Classify(err).String(), "error", err)
	}

	m.client.SetToken("")
	snap, _ := m.update(func() error {
		m.user, m.token = nil, ""
		m.status = models.StatusIdle
		m.lastError = ""
		return nil
	})
	log.Info(ctx, "logged out", "status", snap.Status.String())
	return nil
}
