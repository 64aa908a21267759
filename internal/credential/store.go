// Package credential provides an in-memory credential store.
//
// Credentials are held for the lifetime of the process only; there is no
// persistence across restarts. Passwords are kept as plaintext to match
// the service contract; see DESIGN.md for why this is flagged rather
// than fixed here.
package credential

import (
	"crypto/subtle"
	"errors"
	"sync"

	"github.com/ticklist/ticklist/internal/model"
)

var (
	// ErrUserExists is returned when signing up an already-taken username.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned when username or password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Store is a mutex-guarded username to password mapping.
// The zero value is not usable; use NewStore.
type Store struct {
	mu    sync.RWMutex
	users map[string]string
}

// NewStore creates an empty credential store.
func NewStore() *Store {
	return &Store{
		users: make(map[string]string),
	}
}

// Exists reports whether the username is taken. Case-sensitive.
func (s *Store) Exists(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[username]
	return ok
}

// Create registers a new user. The existence check and the insert happen
// under one lock, so concurrent duplicate signups cannot both succeed.
func (s *Store) Create(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; ok {
		return ErrUserExists
	}

	s.users[username] = password
	return nil
}

// Verify checks the credentials with an exact, case-sensitive match.
// Password comparison is constant-time to avoid leaking prefix length.
func (s *Store) Verify(username, password string) (*model.User, error) {
	s.mu.RLock()
	stored, ok := s.users[username]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return nil, ErrInvalidCredentials
	}

	return &model.User{Username: username, Password: stored}, nil
}

// Len returns the number of registered users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.users)
}
