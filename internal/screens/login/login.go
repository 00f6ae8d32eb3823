package login

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/raneesh-edsmartly/socratic/internal/auth"
	"github.com/raneesh-edsmartly/socratic/internal/router"
	"github.com/raneesh-edsmartly/socratic/internal/screen"
	"github.com/raneesh-edsmartly/socratic/internal/ui/components"
	"github.com/raneesh-edsmartly/socratic/internal/ui/layout"
	"github.com/raneesh-edsmartly/socratic/internal/ui/theme"
)

const (
	fieldUsername = iota
	fieldPassword
	fieldCount
)

type resultMsg struct {
	err error
}

// LoginScreen collects credentials and signs the user in.
type LoginScreen struct {
	auth       *auth.Store
	username   components.TextInput
	password   components.TextInput
	focus      int
	submitting bool
	errMsg     string
}

var _ screen.Screen = (*LoginScreen)(nil)

// New creates a LoginScreen.
func New(store *auth.Store) *LoginScreen {
	return &LoginScreen{
		auth:     store,
		username: components.NewTextInput("username", false, 64),
		password: components.NewPasswordInput("password", 128),
	}
}

func (l *LoginScreen) Title() string { return "Sign In" }

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Sign in"},
		{Key: "Esc", Description: "Back"},
	}
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.username.Init()
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		l.submitting = false
		if msg.err != nil {
			l.errMsg = msg.err.Error()
			return l, nil
		}
		// Back to wherever the user came from; the header and home
		// menu pick up the new session on the next render.
		return l, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		if l.submitting {
			return l, nil
		}
		switch msg.String() {
		case "tab", "down":
			return l, l.setFocus((l.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return l, l.setFocus((l.focus + fieldCount - 1) % fieldCount)
		case "enter":
			return l, l.submit()
		}
		// Editing a field dismisses the previous error.
		l.errMsg = ""
	}

	var cmd tea.Cmd
	switch l.focus {
	case fieldUsername:
		l.username, cmd = l.username.Update(msg)
	case fieldPassword:
		l.password, cmd = l.password.Update(msg)
	}
	return l, cmd
}

func (l *LoginScreen) setFocus(f int) tea.Cmd {
	l.focus = f
	l.username.Model.Blur()
	l.password.Model.Blur()
	switch f {
	case fieldUsername:
		return l.username.Model.Focus()
	case fieldPassword:
		return l.password.Model.Focus()
	}
	return nil
}

func (l *LoginScreen) submit() tea.Cmd {
	username := strings.TrimSpace(l.username.Value())
	password := l.password.Value()
	if username == "" || password == "" {
		l.errMsg = "Username and password are required."
		return nil
	}

	l.submitting = true
	l.errMsg = ""
	store := l.auth
	return func() tea.Msg {
		return resultMsg{err: store.Login(context.Background(), username, password)}
	}
}

func (l *LoginScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Sign In"))
	b.WriteString("\n\n")

	form := renderField("Username", l.username.View(), l.focus == fieldUsername) + "\n" +
		renderField("Password", l.password.View(), l.focus == fieldPassword) + "\n" +
		components.NewButton("Sign in", !l.submitting, nil).View()

	if l.submitting {
		form += "\n\n" + theme.Hint.Render("Signing in...")
	} else if l.errMsg != "" {
		form += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(l.errMsg)
	}

	card := theme.Card.Width(min(width-8, 60)).Render(form)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	return b.String()
}

func renderField(label, input string, focused bool) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return style.Render(label) + "\n" + input + "\n"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
