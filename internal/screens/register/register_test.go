package register

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

func newScreen() *RegisterScreen {
	return New(auth.NewStore(nopBackend{}, &memRepo{}))
}

func TestMismatchedPasswordsShowError(t *testing.T) {
	r := newScreen()
	r.username.Model.SetValue("asha")
	r.password.Model.SetValue("first")
	r.confirm.Model.SetValue("second")

	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if r.errMsg != "Passwords do not match." {
		t.Fatalf("expected a mismatch error, got %q", r.errMsg)
	}
}

func TestEditingClearsSubmitError(t *testing.T) {
	r := newScreen()

	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if r.errMsg == "" {
		t.Fatal("expected an error for empty fields")
	}

	r.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if r.errMsg != "" {
		t.Errorf("editing a field should clear the form error, still have %q", r.errMsg)
	}
}
