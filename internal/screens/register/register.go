package register

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
	fieldConfirm
	fieldCount
)

type resultMsg struct {
	err error
}

// RegisterScreen creates an account and signs the new user in.
type RegisterScreen struct {
	auth       *auth.Store
	username   components.TextInput
	password   components.TextInput
	confirm    components.TextInput
	focus      int
	submitting bool
	errMsg     string
}

var _ screen.Screen = (*RegisterScreen)(nil)

// New creates a RegisterScreen.
func New(store *auth.Store) *RegisterScreen {
	return &RegisterScreen{
		auth:     store,
		username: components.NewTextInput("username", false, 64),
		password: components.NewPasswordInput("password", 128),
		confirm:  components.NewPasswordInput("confirm password", 128),
	}
}

func (r *RegisterScreen) Title() string { return "Create Account" }

func (r *RegisterScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Create account"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *RegisterScreen) Init() tea.Cmd {
	return r.username.Init()
}

func (r *RegisterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		r.submitting = false
		if msg.err != nil {
			r.errMsg = msg.err.Error()
			return r, nil
		}
		return r, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		if r.submitting {
			return r, nil
		}
		switch msg.String() {
		case "tab", "down":
			return r, r.setFocus((r.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return r, r.setFocus((r.focus + fieldCount - 1) % fieldCount)
		case "enter":
			return r, r.submit()
		}
		r.errMsg = ""
	}

	var cmd tea.Cmd
	switch r.focus {
	case fieldUsername:
		r.username, cmd = r.username.Update(msg)
	case fieldPassword:
		r.password, cmd = r.password.Update(msg)
	case fieldConfirm:
		r.confirm, cmd = r.confirm.Update(msg)
	}
	return r, cmd
}

func (r *RegisterScreen) setFocus(f int) tea.Cmd {
	r.focus = f
	r.username.Model.Blur()
	r.password.Model.Blur()
	r.confirm.Model.Blur()
	switch f {
	case fieldUsername:
		return r.username.Model.Focus()
	case fieldPassword:
		return r.password.Model.Focus()
	case fieldConfirm:
		return r.confirm.Model.Focus()
	}
	return nil
}

func (r *RegisterScreen) submit() tea.Cmd {
	username := strings.TrimSpace(r.username.Value())
	password := r.password.Value()
	confirm := r.confirm.Value()

	switch {
	case username == "" || password == "":
		r.errMsg = "Username and password are required."
		return nil
	case password != confirm:
		r.errMsg = "Passwords do not match."
		return nil
	}

	r.submitting = true
	r.errMsg = ""
	store := r.auth
	return func() tea.Msg {
		return resultMsg{err: store.Register(context.Background(), username, password)}
	}
}

func (r *RegisterScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Create Account"))
	b.WriteString("\n\n")

	form := renderField("Username", r.username.View(), r.focus == fieldUsername) + "\n" +
		renderField("Password", r.password.View(), r.focus == fieldPassword) + "\n" +
		renderField("Confirm password", r.confirm.View(), r.focus == fieldConfirm) + "\n" +
		components.NewButton("Create account", !r.submitting, nil).View()

	if r.submitting {
		form += "\n\n" + theme.Hint.Render("Creating account...")
	} else if r.errMsg != "" {
		form += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(r.errMsg)
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
