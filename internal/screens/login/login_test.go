package login

import (
	"context"
	"errors"
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

func newScreen() *LoginScreen {
	return New(auth.NewStore(nopBackend{}, &memRepo{}))
}

func TestSubmitWithEmptyFieldsShowsError(t *testing.T) {
	l := newScreen()

	l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if l.errMsg == "" {
		t.Fatal("expected an error for empty credentials")
	}
}

func TestEditingClearsSubmitError(t *testing.T) {
	l := newScreen()

	l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if l.errMsg == "" {
		t.Fatal("expected an error for empty credentials")
	}

	l.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if l.errMsg != "" {
		t.Errorf("editing a field should clear the form error, still have %q", l.errMsg)
	}
}

func TestEditingClearsBackendError(t *testing.T) {
	l := newScreen()

	l.Update(resultMsg{err: errors.New("Invalid credentials")})
	if l.errMsg != "Invalid credentials" {
		t.Fatalf("expected the backend error to be shown, got %q", l.errMsg)
	}

	l.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if l.errMsg != "" {
		t.Errorf("editing a field should clear the form error, still have %q", l.errMsg)
	}
}

func TestFocusChangeKeepsError(t *testing.T) {
	l := newScreen()

	l.Update(resultMsg{err: errors.New("Invalid credentials")})
	l.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if l.errMsg != "Invalid credentials" {
		t.Errorf("moving focus should not clear the error, got %q", l.errMsg)
	}
}
