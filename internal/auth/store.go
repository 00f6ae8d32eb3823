// Package auth owns the current user's identity and profile: populated
// at startup from local storage, mutated by login/logout/register/
// update operations, consumed by the route guard.
package auth

import (
	"context"
	"sync"

	"github.com/raneesh-edsmartly/socratic/internal/api"
)

// UserSession is the authenticated user's identity plus profile,
// persisted locally so a restart restores it without re-authenticating.
type UserSession struct {
	Username   string
	Name       string
	Grade      string
	Subjects   []string
	Curriculum string
}

// Repository persists the UserSession across restarts. Implementations
// must treat "no stored session" as (nil, nil).
type Repository interface {
	Get(ctx context.Context) (*UserSession, error)
	Put(ctx context.Context, s *UserSession) error
	Clear(ctx context.Context) error
}

// Backend is the slice of the API client the store needs. Narrow so
// tests can fake it.
type Backend interface {
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, username, password string) error
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
	GetProfile(ctx context.Context, username string) (*api.Profile, error)
	UpdateProfile(ctx context.Context, username string, p api.Profile) error
	UpdateCurriculum(ctx context.Context, username, curriculum string) error
}

// Store holds auth state. It is an explicitly owned object injected
// into whatever needs it — there is no package-level singleton. Methods
// are safe for concurrent use: backend calls run inside Bubble Tea
// commands while the event loop reads User.
type Store struct {
	backend Backend
	repo    Repository

	mu      sync.RWMutex
	user    *UserSession
	loading bool
	ready   bool
}

// NewStore creates a Store. Call Load before consulting User.
func NewStore(backend Backend, repo Repository) *Store {
	return &Store{backend: backend, repo: repo}
}

// Load reads the persisted session. The route guard waits for Ready
// before deciding, so a restart never flash-redirects an authenticated
// user.
func (s *Store) Load(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.ready = true
		s.mu.Unlock()
	}()

	user, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// Ready reports whether the initial storage read has completed.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Loading reports whether a backend call is in flight. The UI disables
// submit actions while true; the store itself does not queue calls.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// User returns the current session, or nil when logged out.
func (s *Store) User() *UserSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
}

func (s *Store) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *Store) setUser(u *UserSession) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

// Login validates credentials, fetches the profile, and persists the
// merged session. On any failure the prior state is left untouched and
// the server's message is returned.
func (s *Store) Login(ctx context.Context, username, password string) error {
	s.begin()
	defer s.end()

	if err := s.backend.Login(ctx, username, password); err != nil {
		return err
	}

	profile, err := s.backend.GetProfile(ctx, username)
	if err != nil {
		return err
	}

	user := &UserSession{
		Username:   username,
		Name:       profile.Name,
		Grade:      profile.Grade,
		Subjects:   profile.Subjects,
		Curriculum: profile.Curriculum,
	}
	if err := s.repo.Put(ctx, user); err != nil {
		return err
	}
	s.setUser(user)
	return nil
}

// Register creates the account and immediately logs in with the same
// credentials.
func (s *Store) Register(ctx context.Context, username, password string) error {
	s.begin()
	if err := s.backend.Register(ctx, username, password); err != nil {
		s.end()
		return err
	}
	s.end()
	return s.Login(ctx, username, password)
}

// Logout clears the session from memory and storage. Unconditional; no
// backend call is made.
func (s *Store) Logout(ctx context.Context) {
	s.setUser(nil)
	_ = s.repo.Clear(ctx)
}

// UpdateProfile sends changed fields to the backend and, on success,
// shallow-merges them into the in-memory and persisted session.
func (s *Store) UpdateProfile(ctx context.Context, fields api.Profile) error {
	user := s.User()
	if user == nil {
		return &api.Error{StatusCode: 401, Detail: "not logged in"}
	}

	s.begin()
	defer s.end()

	if err := s.backend.UpdateProfile(ctx, user.Username, fields); err != nil {
		return err
	}

	updated := *user
	if fields.Name != "" {
		updated.Name = fields.Name
	}
	if fields.Grade != "" {
		updated.Grade = fields.Grade
	}
	if fields.Subjects != nil {
		updated.Subjects = fields.Subjects
	}
	if fields.Curriculum != "" {
		updated.Curriculum = fields.Curriculum
	}

	if err := s.repo.Put(ctx, &updated); err != nil {
		return err
	}
	s.setUser(&updated)
	return nil
}

// UpdateCurriculum sets the curriculum through its dedicated endpoint.
func (s *Store) UpdateCurriculum(ctx context.Context, curriculum string) error {
	user := s.User()
	if user == nil {
		return &api.Error{StatusCode: 401, Detail: "not logged in"}
	}

	s.begin()
	defer s.end()

	if err := s.backend.UpdateCurriculum(ctx, user.Username, curriculum); err != nil {
		return err
	}

	updated := *user
	updated.Curriculum = curriculum
	if err := s.repo.Put(ctx, &updated); err != nil {
		return err
	}
	s.setUser(&updated)
	return nil
}

// ChangePassword forwards to the backend. It never mutates the session.
func (s *Store) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	user := s.User()
	if user == nil {
		return &api.Error{StatusCode: 401, Detail: "not logged in"}
	}

	s.begin()
	defer s.end()

	return s.backend.ChangePassword(ctx, user.Username, oldPassword, newPassword)
}
