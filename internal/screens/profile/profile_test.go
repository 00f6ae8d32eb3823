package profile

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/raneesh-edsmartly/socratic/internal/api"
	"github.com/raneesh-edsmartly/socratic/internal/auth"
)

type nopBackend struct{}

func (nopBackend) Login(context.Context, string, string) error                  { return nil }
func (nopBackend) Register(context.Context, string, string) error               { return nil }
func (nopBackend) ChangePassword(context.Context, string, string, string) error { return nil }
func (nopBackend) GetProfile(context.Context, string) (*api.Profile, error) {
	return &api.Profile{}, nil
}
func (nopBackend) UpdateProfile(context.Context, string, api.Profile) error { return nil }
func (nopBackend) UpdateCurriculum(context.Context, string, string) error   { return nil }

type memRepo struct {
	session *auth.UserSession
}

func (m *memRepo) Get(context.Context) (*auth.UserSession, error) { return m.session, nil }
func (m *memRepo) Put(_ context.Context, s *auth.UserSession) error {
	m.session = s
	return nil
}
func (m *memRepo) Clear(context.Context) error {
	m.session = nil
	return nil
}

func loggedInScreen(t *testing.T) *ProfileScreen {
	t.Helper()
	repo := &memRepo{session: &auth.UserSession{Username: "asha"}}
	store := auth.NewStore(nopBackend{}, repo)
	if err := store.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	return New(store)
}

func TestPasswordFormRequiresAllFields(t *testing.T) {
	p := loggedInScreen(t)

	p.Update(tea.KeyPressMsg{Code: 'p', Text: "p"})
	if p.mode != modePassword {
		t.Fatalf("expected password mode, got %d", p.mode)
	}

	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if p.errMsg != "All fields are required." {
		t.Fatalf("expected the required-fields error, got %q", p.errMsg)
	}
}

func TestEditingClearsFormError(t *testing.T) {
	p := loggedInScreen(t)

	p.Update(tea.KeyPressMsg{Code: 'p', Text: "p"})
	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if p.errMsg == "" {
		t.Fatal("expected an error for empty fields")
	}

	p.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if p.errMsg != "" {
		t.Errorf("editing a field should clear the form error, still have %q", p.errMsg)
	}
}
