package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/raneesh-edsmartly/socratic/internal/api"
	"github.com/raneesh-edsmartly/socratic/internal/auth"
	"github.com/raneesh-edsmartly/socratic/internal/router"
	"github.com/raneesh-edsmartly/socratic/internal/screen"
	"github.com/raneesh-edsmartly/socratic/internal/screens/blogs"
	chatscreen "github.com/raneesh-edsmartly/socratic/internal/screens/chat"
	"github.com/raneesh-edsmartly/socratic/internal/screens/dashboard"
	"github.com/raneesh-edsmartly/socratic/internal/screens/login"
	"github.com/raneesh-edsmartly/socratic/internal/screens/profile"
	quizscreen "github.com/raneesh-edsmartly/socratic/internal/screens/quiz"
	"github.com/raneesh-edsmartly/socratic/internal/screens/register"
	"github.com/raneesh-edsmartly/socratic/internal/store"
	"github.com/raneesh-edsmartly/socratic/internal/ui/components"
	"github.com/raneesh-edsmartly/socratic/internal/ui/theme"
)

// Deps carries everything the home screen's destinations need.
type Deps struct {
	API       *api.Client
	Auth      *auth.Store
	Sessions  store.SessionRepo
	Attempts  store.AttemptRepo
	QuizTimer bool
}

// HomeScreen is the main navigation hub.
type HomeScreen struct {
	deps     Deps
	menu     components.Menu
	loggedIn bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}
	h.loggedIn = deps.Auth.User() != nil
	h.menu = components.NewMenu(h.buildItems())
	return h
}

func (h *HomeScreen) buildItems() []components.MenuItem {
	deps := h.deps

	loginFactory := func() screen.Screen { return login.New(deps.Auth) }
	homeFactory := func() screen.Screen { return New(deps) }

	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: factory()}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "SOCRATIC CHAT", Action: push(func() screen.Screen {
			return router.Protected(deps.Auth, func() screen.Screen {
				return chatscreen.New(deps.API, deps.Auth, deps.Sessions)
			}, loginFactory)
		})},
		{Label: "TAKE A QUIZ", Action: push(func() screen.Screen {
			return router.Protected(deps.Auth, func() screen.Screen {
				return quizscreen.New(deps.API, deps.Auth, deps.Attempts, deps.QuizTimer)
			}, loginFactory)
		})},
		{Label: "BLOGS", Action: push(func() screen.Screen {
			return blogs.New(deps.API)
		})},
		{Label: "DASHBOARD", Action: push(func() screen.Screen {
			return router.Protected(deps.Auth, func() screen.Screen {
				return dashboard.New(deps.Auth, deps.Attempts)
			}, loginFactory)
		})},
		{Label: "PROFILE", Action: push(func() screen.Screen {
			return router.Protected(deps.Auth, func() screen.Screen {
				return profile.New(deps.Auth)
			}, loginFactory)
		})},
	}

	if h.loggedIn {
		items = append(items, components.MenuItem{
			Label: "SIGN OUT",
			Action: func() tea.Cmd {
				deps.Auth.Logout(context.Background())
				return func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: homeFactory()}
				}
			},
		})
	} else {
		items = append(items,
			components.MenuItem{Label: "SIGN IN", Action: push(func() screen.Screen {
				return router.PublicOnly(deps.Auth, loginFactory, homeFactory)
			})},
			components.MenuItem{Label: "CREATE ACCOUNT", Action: push(func() screen.Screen {
				return router.PublicOnly(deps.Auth, func() screen.Screen {
					return register.New(deps.Auth)
				}, homeFactory)
			})},
		)
	}

	items = append(items, components.MenuItem{
		Label: "EXIT",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})
	return items
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// The session can change underneath us (sign-in on a pushed screen,
	// startup restore); rebuild the menu when it does.
	if loggedIn := h.deps.Auth.User() != nil; loggedIn != h.loggedIn {
		h.loggedIn = loggedIn
		h.menu = components.NewMenu(h.buildItems())
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("S O C R A T I C")
	subtitle := theme.Subtitle.Render("learn by questioning")
	sections = append(sections, title, subtitle, "")

	if user := h.deps.Auth.User(); user != nil {
		name := user.Name
		if name == "" {
			name = user.Username
		}
		greeting := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("Welcome back, " + name)
		sections = append(sections, greeting, "")
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
