// Package session holds the client's single source of truth for "who is
// logged in". The store survives process restarts through the state
// repository it is given; a volatile repository yields a purely in-memory
// session.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/artembredak/todocli/internal/client/models"
	"github.com/artembredak/todocli/internal/client/state"
	"github.com/artembredak/todocli/internal/logging"
)

// userKey is the single record the store keeps in the state repository.
const userKey = "user"

// State of the session store.
type State string

const (
	// StateUnknown means Init has not completed yet; consumers must not
	// read user data in this state.
	StateUnknown State = "unknown"
	// StateAnonymous means no user is logged in.
	StateAnonymous State = "anonymous"
	// StateAuthenticated means Current returns a valid user.
	StateAuthenticated State = "authenticated"
)

// Store holds at most one authenticated user. All transitions are
// whole-record replaces; there are no partial updates.
type Store struct {
	mu   sync.RWMutex
	repo state.Repository
	log  logging.Logger

	initOnce sync.Once
	st       State
	user     models.User
}

func NewStore(repo state.Repository, log logging.Logger) *Store {
	return &Store{
		repo: repo,
		log:  log.With("component", "session"),
		st:   StateUnknown,
	}
}

// Init restores the persisted session, resolving the store to Anonymous or
// Authenticated. It runs its work exactly once per store lifetime; later
// calls are no-ops. A missing or unparsable record silently resolves to
// Anonymous, never to an error.
func (s *Store) Init(ctx context.Context) error {
	var err error
	s.initOnce.Do(func() {
		err = s.restore(ctx)
	})
	return err
}

func (s *Store) restore(ctx context.Context) error {
	data, err := s.repo.Get(ctx, userKey)
	if err != nil {
		return fmt.Errorf("session restore: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(data) == 0 {
		s.st = StateAnonymous
		return nil
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		s.log.Warn(ctx, "discarding corrupt session record", "err", err)
		s.st = StateAnonymous
		return nil
	}

	s.user = u
	s.st = StateAuthenticated
	s.log.Debug(ctx, "session restored", "username", u.Username)
	return nil
}

// Login transitions the store to Authenticated(user) and replaces the
// persisted state wholesale, so nothing from an earlier session lingers.
// The password is stripped before anything is written. The in-memory
// transition happens even if persisting fails; the error is still
// returned so the caller can surface it.
func (s *Store) Login(ctx context.Context, user models.User) error {
	user = user.Sanitized()

	s.mu.Lock()
	s.user = user
	s.st = StateAuthenticated
	s.mu.Unlock()

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session persist: %w", err)
	}
	if err := s.repo.Replace(ctx, userKey, data); err != nil {
		return fmt.Errorf("session persist: %w", err)
	}
	return nil
}

// Logout transitions the store to Anonymous and erases the persisted
// record.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.user = models.User{}
	s.st = StateAnonymous
	s.mu.Unlock()

	if err := s.repo.Delete(ctx, userKey); err != nil {
		return fmt.Errorf("session erase: %w", err)
	}
	return nil
}

// Current returns the authenticated user, if any. It is synchronous and
// always reflects the latest completed transition.
func (s *Store) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.st == StateAuthenticated
}

// State reports the store's lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st
}

// Loading reports whether Init has not completed yet. Consumers must not
// trust Current before Loading turns false.
func (s *Store) Loading() bool {
	return s.State() == StateUnknown
}
