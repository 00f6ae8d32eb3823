package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/raneesh-edsmartly/socratic/internal/api"
)

// fakeBackend scripts auth responses and records calls.
type fakeBackend struct {
	loginErr    error
	registerErr error
	profileErr  error
	updateErr   error
	passwordErr error

	profile api.Profile

	loginCalls    []string
	registerCalls []string
	passwords     [][2]string
	curricula     []string
}

func (f *fakeBackend) Login(_ context.Context, username, _ string) error {
	f.loginCalls = append(f.loginCalls, username)
	return f.loginErr
}

func (f *fakeBackend) Register(_ context.Context, username, _ string) error {
	f.registerCalls = append(f.registerCalls, username)
	return f.registerErr
}

func (f *fakeBackend) ChangePassword(_ context.Context, _, oldPassword, newPassword string) error {
	f.passwords = append(f.passwords, [2]string{oldPassword, newPassword})
	return f.passwordErr
}

func (f *fakeBackend) GetProfile(_ context.Context, _ string) (*api.Profile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	p := f.profile
	return &p, nil
}

func (f *fakeBackend) UpdateProfile(_ context.Context, _ string, _ api.Profile) error {
	return f.updateErr
}

func (f *fakeBackend) UpdateCurriculum(_ context.Context, _, curriculum string) error {
	f.curricula = append(f.curricula, curriculum)
	return f.updateErr
}

// fakeRepo is an in-memory Repository.
type fakeRepo struct {
	stored *UserSession
	getErr error
	putErr error
	puts   int
	clears int
}

func (r *fakeRepo) Get(context.Context) (*UserSession, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.stored, nil
}

func (r *fakeRepo) Put(_ context.Context, s *UserSession) error {
	if r.putErr != nil {
		return r.putErr
	}
	r.puts++
	copied := *s
	r.stored = &copied
	return nil
}

func (r *fakeRepo) Clear(context.Context) error {
	r.clears++
	r.stored = nil
	return nil
}

func TestLoadRestoresPersistedSession(t *testing.T) {
	repo := &fakeRepo{stored: &UserSession{Username: "asha", Name: "Asha"}}
	s := NewStore(&fakeBackend{}, repo)

	if s.Ready() {
		t.Error("store must not be ready before Load")
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !s.Ready() {
		t.Error("expected Ready after Load")
	}
	if u := s.User(); u == nil || u.Username != "asha" {
		t.Errorf("expected restored user, got %+v", u)
	}
}

func TestLoadWithEmptyStorage(t *testing.T) {
	s := NewStore(&fakeBackend{}, &fakeRepo{})
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !s.Ready() {
		t.Error("expected Ready even with no stored session")
	}
	if s.User() != nil {
		t.Error("expected no user")
	}
}

func TestLoadErrorStillBecomesReady(t *testing.T) {
	s := NewStore(&fakeBackend{}, &fakeRepo{getErr: errors.New("disk")})
	if err := s.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	// The guard must still be able to decide, treating the user as
	// logged out.
	if !s.Ready() {
		t.Error("expected Ready after a failed Load")
	}
}

func TestLoginMergesProfileAndPersists(t *testing.T) {
	backend := &fakeBackend{profile: api.Profile{
		Name:       "Asha Rao",
		Grade:      "10",
		Subjects:   []string{"biology", "physics"},
		Curriculum: "CBSE",
	}}
	repo := &fakeRepo{}
	s := NewStore(backend, repo)

	if err := s.Login(context.Background(), "asha", "secret"); err != nil {
		t.Fatal(err)
	}

	u := s.User()
	if u == nil {
		t.Fatal("expected a logged-in user")
	}
	if u.Username != "asha" || u.Name != "Asha Rao" || u.Curriculum != "CBSE" {
		t.Errorf("profile not merged: %+v", u)
	}
	if len(u.Subjects) != 2 {
		t.Errorf("subjects not merged: %v", u.Subjects)
	}
	if repo.stored == nil || repo.stored.Username != "asha" {
		t.Error("session not persisted")
	}
	if s.Loading() {
		t.Error("loading flag stuck")
	}
}

func TestLoginFailureLeavesStateUntouched(t *testing.T) {
	backend := &fakeBackend{loginErr: &api.Error{StatusCode: 401, Detail: "Invalid credentials"}}
	repo := &fakeRepo{}
	s := NewStore(backend, repo)

	err := s.Login(context.Background(), "asha", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Detail != "Invalid credentials" {
		t.Errorf("expected the server detail to surface, got %v", err)
	}
	if s.User() != nil || repo.puts != 0 {
		t.Error("failed login must not change state")
	}
}

func TestLoginProfileFetchFailure(t *testing.T) {
	backend := &fakeBackend{profileErr: errors.New("profile unavailable")}
	s := NewStore(backend, &fakeRepo{})

	if err := s.Login(context.Background(), "asha", "secret"); err == nil {
		t.Fatal("expected error")
	}
	if s.User() != nil {
		t.Error("partial login must not install a user")
	}
}

func TestRegisterLogsInWithSameCredentials(t *testing.T) {
	backend := &fakeBackend{profile: api.Profile{Name: "New User"}}
	s := NewStore(backend, &fakeRepo{})

	if err := s.Register(context.Background(), "newbie", "secret"); err != nil {
		t.Fatal(err)
	}
	if len(backend.registerCalls) != 1 || len(backend.loginCalls) != 1 {
		t.Errorf("expected register then login, got %v / %v", backend.registerCalls, backend.loginCalls)
	}
	if u := s.User(); u == nil || u.Username != "newbie" {
		t.Errorf("expected logged-in user after register, got %+v", u)
	}
}

func TestRegisterFailureSkipsLogin(t *testing.T) {
	backend := &fakeBackend{registerErr: &api.Error{StatusCode: 400, Detail: "Username already exists"}}
	s := NewStore(backend, &fakeRepo{})

	if err := s.Register(context.Background(), "taken", "secret"); err == nil {
		t.Fatal("expected error")
	}
	if len(backend.loginCalls) != 0 {
		t.Error("login must not run when registration fails")
	}
}

func TestLogoutClearsMemoryAndStorage(t *testing.T) {
	repo := &fakeRepo{stored: &UserSession{Username: "asha"}}
	s := NewStore(&fakeBackend{}, repo)
	_ = s.Load(context.Background())

	s.Logout(context.Background())
	if s.User() != nil {
		t.Error("expected no user after logout")
	}
	if repo.clears != 1 || repo.stored != nil {
		t.Error("expected storage cleared")
	}
}

func TestUpdateProfileMergesChangedFieldsOnly(t *testing.T) {
	repo := &fakeRepo{stored: &UserSession{
		Username:   "asha",
		Name:       "Asha",
		Grade:      "9",
		Subjects:   []string{"biology"},
		Curriculum: "CBSE",
	}}
	s := NewStore(&fakeBackend{}, repo)
	_ = s.Load(context.Background())

	if err := s.UpdateProfile(context.Background(), api.Profile{Grade: "10"}); err != nil {
		t.Fatal(err)
	}

	u := s.User()
	if u.Grade != "10" {
		t.Errorf("grade not updated: %q", u.Grade)
	}
	if u.Name != "Asha" || u.Curriculum != "CBSE" || len(u.Subjects) != 1 {
		t.Errorf("untouched fields changed: %+v", u)
	}
	if repo.stored.Grade != "10" {
		t.Error("merge not persisted")
	}
}

func TestUpdateProfileBackendFailureLeavesState(t *testing.T) {
	repo := &fakeRepo{stored: &UserSession{Username: "asha", Grade: "9"}}
	s := NewStore(&fakeBackend{updateErr: errors.New("server error")}, repo)
	_ = s.Load(context.Background())

	if err := s.UpdateProfile(context.Background(), api.Profile{Grade: "10"}); err == nil {
		t.Fatal("expected error")
	}
	if s.User().Grade != "9" {
		t.Error("failed update must not change the session")
	}
}

func TestUpdateProfileRequiresLogin(t *testing.T) {
	s := NewStore(&fakeBackend{}, &fakeRepo{})
	_ = s.Load(context.Background())

	err := s.UpdateProfile(context.Background(), api.Profile{Name: "x"})
	if !api.IsStatus(err, 401) {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestUpdateCurriculum(t *testing.T) {
	backend := &fakeBackend{}
	repo := &fakeRepo{stored: &UserSession{Username: "asha", Curriculum: "CBSE"}}
	s := NewStore(backend, repo)
	_ = s.Load(context.Background())

	if err := s.UpdateCurriculum(context.Background(), "IB"); err != nil {
		t.Fatal(err)
	}
	if s.User().Curriculum != "IB" || repo.stored.Curriculum != "IB" {
		t.Error("curriculum not updated")
	}
	if len(backend.curricula) != 1 || backend.curricula[0] != "IB" {
		t.Errorf("backend not called correctly: %v", backend.curricula)
	}
}

func TestChangePasswordNeverMutatesSession(t *testing.T) {
	backend := &fakeBackend{}
	repo := &fakeRepo{stored: &UserSession{Username: "asha", Name: "Asha"}}
	s := NewStore(backend, repo)
	_ = s.Load(context.Background())

	if err := s.ChangePassword(context.Background(), "old", "new"); err != nil {
		t.Fatal(err)
	}
	if len(backend.passwords) != 1 || backend.passwords[0] != [2]string{"old", "new"} {
		t.Errorf("backend not called correctly: %v", backend.passwords)
	}
	if repo.puts != 0 {
		t.Error("password change must not persist anything")
	}
	if u := s.User(); u == nil || u.Name != "Asha" {
		t.Error("session changed")
	}
}
