// ABOUTME: Session store: single source of truth for who is logged in
// ABOUTME: Only admin identities are ever retained; token and user persist together

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/brightboard/admin-cli/internal/api"
	"github.com/brightboard/admin-cli/internal/keystore"
)

// Storage keys for the persisted session. Always written and cleared as a
// pair; neither is a valid session on its own.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// State is the session lifecycle state.
type State int

const (
	// StateUninitialized means Initialize has not run yet.
	StateUninitialized State = iota
	// StateChecking is the one-shot rehydration pass at startup.
	StateChecking
	// StateUnauthenticated means no session is held.
	StateUnauthenticated
	// StateAuthenticated means an admin identity holds the session.
	StateAuthenticated
)

// ErrMissingCredentials is returned by Login when email or password is blank.
var ErrMissingCredentials = errors.New("email and password are required")

// Store owns the authenticated-identity lifecycle: login, logout,
// persistence across runs, and eviction when the backend rejects the token.
type Store struct {
	keys *keystore.Store
	gate *api.Client

	mu       sync.Mutex
	state    State
	identity *api.User
}

// New creates a session store over the given persistence and API gate.
// The gate's eviction hook is wired here so a 401 on any call expires the
// session without command involvement.
func New(keys *keystore.Store, gate *api.Client) *Store {
	s := &Store{
		keys:  keys,
		gate:  gate,
		state: StateUninitialized,
	}
	gate.SetUnauthorizedHook(s.expire)
	return s
}

// isSessionPrincipal is the one predicate deciding whether an identity may
// hold a console session. Used by both Login and Initialize.
func isSessionPrincipal(u api.User) bool {
	return u.Role == api.RoleAdmin
}

// Initialize rehydrates a persisted session. Malformed or unauthorized
// stored state is cleaned up and treated as "no session", never surfaced
// as an error. Runs exactly once; later calls are no-ops.
func (s *Store) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUninitialized {
		return
	}
	s.state = StateChecking

	token, haveToken := s.keys.Get(KeyToken)
	rawUser, haveUser := s.keys.Get(KeyUser)
	if !haveToken || !haveUser {
		s.state = StateUnauthenticated
		return
	}

	var user api.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil || !isSessionPrincipal(user) {
		// Corrupted or unauthorized session: drop both keys, hold nothing.
		s.keys.Delete(KeyToken, KeyUser)
		s.state = StateUnauthenticated
		return
	}

	s.gate.SetToken(token)
	s.identity = &user
	s.state = StateAuthenticated
}

// Login authenticates against the backend. The session is kept only when
// the returned identity is an admin; otherwise nothing is persisted and the
// caller gets an authorization error even though the credentials were valid.
func (s *Store) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrMissingCredentials
	}

	result, err := s.gate.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if !isSessionPrincipal(result.User) {
		return api.ErrAdminRequired
	}

	rawUser, err := json.Marshal(result.User)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.keys.Put(map[string]string{
		KeyToken: result.Token,
		KeyUser:  string(rawUser),
	}); err != nil {
		return err
	}

	s.gate.SetToken(result.Token)
	user := result.User
	s.identity = &user
	s.state = StateAuthenticated
	return nil
}

// Logout clears the persisted and in-memory session. Idempotent; never
// touches the network.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// expire is the eviction path invoked by the gate on 401. Identical to
// Logout except callers surface it as "session expired". Safe under
// concurrent 401s: the second eviction finds nothing to clear.
func (s *Store) expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil && s.state != StateUninitialized && s.state != StateChecking {
		return
	}
	s.clearLocked()
}

func (s *Store) clearLocked() {
	s.keys.Delete(KeyToken, KeyUser)
	s.gate.ClearToken()
	s.identity = nil
	s.state = StateUnauthenticated
}

// Current returns a copy of the session identity, or nil when logged out.
func (s *Store) Current() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	user := *s.identity
	return &user
}

// State returns the session lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Authenticated reports whether an admin identity holds the session.
func (s *Store) Authenticated() bool {
	return s.State() == StateAuthenticated
}

// Loading reports whether the startup rehydration check is still running.
func (s *Store) Loading() bool {
	return s.State() == StateChecking
}
