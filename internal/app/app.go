package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/raneesh-edsmartly/socratic/internal/api"
	"github.com/raneesh-edsmartly/socratic/internal/auth"
	"github.com/raneesh-edsmartly/socratic/internal/router"
	"github.com/raneesh-edsmartly/socratic/internal/screen"
	"github.com/raneesh-edsmartly/socratic/internal/screens/home"
	"github.com/raneesh-edsmartly/socratic/internal/screens/welcome"
	"github.com/raneesh-edsmartly/socratic/internal/store"
	"github.com/raneesh-edsmartly/socratic/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	API       *api.Client
	Auth      *auth.Store
	Sessions  store.SessionRepo
	Attempts  store.AttemptRepo
	Logger    *zap.Logger
	QuizTimer bool
}

// SessionLoadedMsg is broadcast once the persisted user session has
// been read at startup. Route guards hold their decision until then.
type SessionLoadedMsg struct {
	Err error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	deps := home.Deps{
		API:       opts.API,
		Auth:      opts.Auth,
		Sessions:  opts.Sessions,
		Attempts:  opts.Attempts,
		QuizTimer: opts.QuizTimer,
	}
	welcomeScreen := welcome.New(func() screen.Screen {
		return home.New(deps)
	})
	return AppModel{
		router: router.New(welcomeScreen),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.router.Active().Init(),
		m.loadSession(),
	)
}

// loadSession restores the persisted user session off the event loop.
func (m AppModel) loadSession() tea.Cmd {
	s := m.opts.Auth
	logger := m.opts.Logger
	return func() tea.Msg {
		err := s.Load(context.Background())
		if err != nil && logger != nil {
			logger.Warn("session restore failed", zap.Error(err))
		}
		return SessionLoadedMsg{Err: err}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	username := ""
	if u := m.opts.Auth.User(); u != nil {
		username = u.Username
	}

	header := layout.RenderHeader(title, username, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
