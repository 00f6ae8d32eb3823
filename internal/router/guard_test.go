package router

import (
	"context"
	"testing"

	"github.com/raneesh-edsmartly/socratic/internal/api"
	"github.com/raneesh-edsmartly/socratic/internal/auth"
	"github.com/raneesh-edsmartly/socratic/internal/screen"
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

func factory(s screen.Screen) func() screen.Screen {
	return func() screen.Screen { return s }
}

func TestProtectedWaitsForReady(t *testing.T) {
	store := auth.NewStore(nopBackend{}, &memRepo{})

	g := Protected(store,
		factory(&stubScreen{title: "dashboard"}),
		factory(&stubScreen{title: "login"}),
	).(*guardScreen)

	if cmd := g.Init(); cmd != nil {
		t.Fatal("expected no decision before the session load completes")
	}
}

func TestProtectedRedirectsLoggedOut(t *testing.T) {
	store := auth.NewStore(nopBackend{}, &memRepo{})
	if err := store.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	g := Protected(store,
		factory(&stubScreen{title: "dashboard"}),
		factory(&stubScreen{title: "login"}),
	).(*guardScreen)

	cmd := g.Init()
	if cmd == nil {
		t.Fatal("expected a decision once ready")
	}
	msg, ok := cmd().(ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "login" {
		t.Errorf("expected redirect to login, got %q", msg.Screen.Title())
	}
}

func TestProtectedAllowsLoggedIn(t *testing.T) {
	repo := &memRepo{session: &auth.UserSession{Username: "priya"}}
	store := auth.NewStore(nopBackend{}, repo)
	if err := store.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	g := Protected(store,
		factory(&stubScreen{title: "dashboard"}),
		factory(&stubScreen{title: "login"}),
	).(*guardScreen)

	cmd := g.Init()
	if cmd == nil {
		t.Fatal("expected a decision once ready")
	}
	msg := cmd().(ReplaceScreenMsg)
	if msg.Screen.Title() != "dashboard" {
		t.Errorf("expected dashboard, got %q", msg.Screen.Title())
	}
}

func TestPublicOnlyRedirectsLoggedIn(t *testing.T) {
	repo := &memRepo{session: &auth.UserSession{Username: "priya"}}
	store := auth.NewStore(nopBackend{}, repo)
	if err := store.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	g := PublicOnly(store,
		factory(&stubScreen{title: "login"}),
		factory(&stubScreen{title: "home"}),
	).(*guardScreen)

	cmd := g.Init()
	if cmd == nil {
		t.Fatal("expected a decision once ready")
	}
	msg := cmd().(ReplaceScreenMsg)
	if msg.Screen.Title() != "home" {
		t.Errorf("expected redirect to home, got %q", msg.Screen.Title())
	}
}

func TestGuardDecidesOnce(t *testing.T) {
	store := auth.NewStore(nopBackend{}, &memRepo{})
	if err := store.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	g := Protected(store,
		factory(&stubScreen{title: "dashboard"}),
		factory(&stubScreen{title: "login"}),
	).(*guardScreen)

	if cmd := g.Init(); cmd == nil {
		t.Fatal("expected a decision on Init")
	}
	if _, cmd := g.Update(nil); cmd != nil {
		t.Error("expected no second decision after the first")
	}
}
