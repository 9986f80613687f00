package session

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/lautaroCastilloJ/storefront/internal/domain"
	"github.com/lautaroCastilloJ/storefront/internal/storage"
)

// Authenticator is the slice of the backend API the session store needs.
// Consumers define this interface, not the HTTP client.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (domain.LoginResult, error)
}

// Store represents and transitions authentication state. Two states exist:
// unauthenticated and authenticated{role, username}. Sign-in, sign-out and
// the 401-forced reset are the only transitions; every error path lands on
// a well-defined state, never a partial one.
type Store struct {
	mu      sync.Mutex
	storage storage.Store
	auth    Authenticator
	current domain.Session
}

// NewStore restores the session from storage and reconciles it: a
// credential without a role or username means partially written or
// tampered state, so the whole persisted session is wiped and the store
// starts unauthenticated.
func NewStore(ctx context.Context, st storage.Store, auth Authenticator) *Store {
	s := &Store{storage: st, auth: auth}
	s.reconcile(ctx)
	return s
}

func (s *Store) reconcile(ctx context.Context) {
	token := s.readKey(ctx, storage.KeyToken)
	if !tokenUsable(token) {
		// No usable credential (or a placeholder left by a broken
		// writer): make sure nothing else lingers either.
		if token != "" || s.readKey(ctx, storage.KeyRole) != "" || s.readKey(ctx, storage.KeyUsername) != "" {
			s.wipe(ctx)
		}
		return
	}

	role := domain.Role(s.readKey(ctx, storage.KeyRole))
	username := s.readKey(ctx, storage.KeyUsername)
	if !role.Valid() || username == "" {
		log.Printf("incomplete persisted session, resetting")
		s.wipe(ctx)
		return
	}

	s.current = domain.Session{
		IsAuthenticated: true,
		Role:            role,
		Username:        username,
		Token:           token,
		CustomerID:      s.readKey(ctx, storage.KeyCustomerID),
	}
}

// tokenUsable rejects empty credentials and the literal placeholders a
// buggy writer can leave behind.
func tokenUsable(token string) bool {
	return token != "" && token != "undefined" && token != "null"
}

// SignIn delegates to the auth API. Invalid credentials come back as an
// ordinary error from the API client; session state is only mutated on
// success, and then all persisted keys are written before memory is
// updated. A customer identifier is persisted only when the server
// returned one; its absence clears any previously stored identifier so a
// role change between sessions cannot leak a stale one.
func (s *Store) SignIn(ctx context.Context, username, password string) error {
	res, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	// The backend may omit the username; fall back to what was submitted.
	if res.Username == "" {
		res.Username = username
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, res); err != nil {
		// A half-written session must not survive; force the clean state.
		s.wipe(ctx)
		s.current = domain.Session{}
		return err
	}

	s.current = domain.Session{
		IsAuthenticated: true,
		Role:            res.Role,
		Username:        res.Username,
		Token:           res.Token,
		CustomerID:      res.CustomerID,
	}
	return nil
}

func (s *Store) persist(ctx context.Context, res domain.LoginResult) error {
	if err := s.storage.Set(ctx, storage.KeyToken, res.Token); err != nil {
		return fmt.Errorf("failed to persist credential: %w", err)
	}
	if err := s.storage.Set(ctx, storage.KeyRole, string(res.Role)); err != nil {
		return fmt.Errorf("failed to persist role: %w", err)
	}
	if err := s.storage.Set(ctx, storage.KeyUsername, res.Username); err != nil {
		return fmt.Errorf("failed to persist username: %w", err)
	}
	if res.CustomerID != "" {
		if err := s.storage.Set(ctx, storage.KeyCustomerID, res.CustomerID); err != nil {
			return fmt.Errorf("failed to persist customer id: %w", err)
		}
		return nil
	}
	if err := s.storage.Delete(ctx, storage.KeyCustomerID); err != nil {
		return fmt.Errorf("failed to clear customer id: %w", err)
	}
	return nil
}

// SignOut clears all persisted session keys and resets in-memory state in
// one step.
func (s *Store) SignOut(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wipe(ctx)
	s.current = domain.Session{}
}

// ForceReset is the reaction to the backend rejecting the credential on
// any authenticated request. End state is identical to SignOut.
func (s *Store) ForceReset(ctx context.Context) {
	log.Printf("credential rejected by backend, resetting session")
	s.SignOut(ctx)
}

func (s *Store) wipe(ctx context.Context) {
	for _, key := range []string{
		storage.KeyToken,
		storage.KeyRole,
		storage.KeyUsername,
		storage.KeyCustomerID,
	} {
		if err := s.storage.Delete(ctx, key); err != nil {
			log.Printf("session wipe error for %q: %v", key, err)
		}
	}
}

// Current returns a copy of the session state.
func (s *Store) Current() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.IsAuthenticated
}

// Token implements the API client's token source. Unauthenticated sessions
// yield an empty string, which the client translates to "no header".
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Token
}

func (s *Store) readKey(ctx context.Context, key string) string {
	value, err := s.storage.Get(ctx, key)
	if err != nil {
		return ""
	}
	return value
}
