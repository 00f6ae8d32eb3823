package router

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/raneesh-edsmartly/socratic/internal/auth"
	"github.com/raneesh-edsmartly/socratic/internal/screen"
	"github.com/raneesh-edsmartly/socratic/internal/ui/theme"
)

// guardScreen defers a routing decision until the auth store has
// finished its initial storage read. Deciding early would redirect an
// authenticated user to sign-in on every restart.
type guardScreen struct {
	auth    *auth.Store
	allowed func() screen.Screen
	denied  func() screen.Screen
	decided bool
	wantSet bool // true: allowed needs a user; false: allowed needs no user
}

// Protected returns a screen that resolves to target once the session is
// known, or to fallback (typically sign-in) when nobody is logged in.
func Protected(store *auth.Store, target, fallback func() screen.Screen) screen.Screen {
	return &guardScreen{auth: store, allowed: target, denied: fallback, wantSet: true}
}

// PublicOnly returns a screen that resolves to target when nobody is
// logged in, or to fallback (typically home) for an authenticated user.
func PublicOnly(store *auth.Store, target, fallback func() screen.Screen) screen.Screen {
	return &guardScreen{auth: store, allowed: target, denied: fallback, wantSet: false}
}

func (g *guardScreen) Title() string { return "" }

func (g *guardScreen) Init() tea.Cmd {
	return g.maybeDecide()
}

func (g *guardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Any message is a chance to re-check; the app broadcasts one when
	// the session load completes.
	return g, g.maybeDecide()
}

func (g *guardScreen) maybeDecide() tea.Cmd {
	if g.decided || !g.auth.Ready() {
		return nil
	}
	g.decided = true

	loggedIn := g.auth.User() != nil
	factory := g.allowed
	if loggedIn != g.wantSet {
		factory = g.denied
	}

	next := factory()
	return func() tea.Msg {
		return ReplaceScreenMsg{Screen: next}
	}
}

func (g *guardScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Loading...")
}
