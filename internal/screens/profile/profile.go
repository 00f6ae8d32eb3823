package profile

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/raneesh-edsmartly/socratic/internal/api"
	"github.com/raneesh-edsmartly/socratic/internal/auth"
	"github.com/raneesh-edsmartly/socratic/internal/screen"
	"github.com/raneesh-edsmartly/socratic/internal/ui/components"
	"github.com/raneesh-edsmartly/socratic/internal/ui/layout"
	"github.com/raneesh-edsmartly/socratic/internal/ui/theme"
)

type mode int

const (
	modeView mode = iota
	modeEdit
	modeCurriculum
	modePassword
)

const (
	editName = iota
	editGrade
	editSubjects
	editFieldCount
)

const (
	pwOld = iota
	pwNew
	pwConfirm
	pwFieldCount
)

type resultMsg struct {
	err error
	msg string
}

// ProfileScreen shows and edits the signed-in user's profile.
type ProfileScreen struct {
	auth *auth.Store

	mode       mode
	inputs     []components.TextInput
	focus      int
	submitting bool
	errMsg     string
	statusMsg  string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates the profile screen.
func New(store *auth.Store) *ProfileScreen {
	return &ProfileScreen{auth: store}
}

func (p *ProfileScreen) Title() string { return "Profile" }

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	if p.mode == modeView {
		return []layout.KeyHint{
			{Key: "E", Description: "Edit"},
			{Key: "C", Description: "Curriculum"},
			{Key: "P", Description: "Password"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		p.submitting = false
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return p, nil
		}
		p.mode = modeView
		p.errMsg = ""
		p.statusMsg = msg.msg
		return p, nil

	case tea.KeyMsg:
		if p.submitting {
			return p, nil
		}
		if p.mode == modeView {
			return p.updateView(msg)
		}
		return p.updateForm(msg)
	}
	return p, nil
}

func (p *ProfileScreen) updateView(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	user := p.auth.User()
	if user == nil {
		return p, nil
	}

	switch msg.String() {
	case "e":
		p.mode = modeEdit
		p.statusMsg = ""
		p.errMsg = ""
		p.inputs = []components.TextInput{
			components.NewTextInput("display name", false, 80),
			components.NewTextInput("grade", false, 12),
			components.NewTextInput("subjects, comma separated", false, 200),
		}
		p.inputs[editName].Model.SetValue(user.Name)
		p.inputs[editGrade].Model.SetValue(user.Grade)
		p.inputs[editSubjects].Model.SetValue(strings.Join(user.Subjects, ", "))
		p.focus = 0
		return p, p.inputs[0].Model.Focus()
	case "c":
		p.mode = modeCurriculum
		p.statusMsg = ""
		p.errMsg = ""
		p.inputs = []components.TextInput{
			components.NewTextInput("curriculum (e.g. CBSE, IGCSE)", false, 60),
		}
		p.inputs[0].Model.SetValue(user.Curriculum)
		p.focus = 0
		return p, p.inputs[0].Model.Focus()
	case "p":
		p.mode = modePassword
		p.statusMsg = ""
		p.errMsg = ""
		p.inputs = []components.TextInput{
			components.NewPasswordInput("current password", 128),
			components.NewPasswordInput("new password", 128),
			components.NewPasswordInput("confirm new password", 128),
		}
		p.focus = 0
		return p, p.inputs[0].Model.Focus()
	}
	return p, nil
}

func (p *ProfileScreen) updateForm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return p, p.setFocus((p.focus + 1) % len(p.inputs))
	case "shift+tab", "up":
		return p, p.setFocus((p.focus + len(p.inputs) - 1) % len(p.inputs))
	case "enter":
		return p, p.submit()
	}
	p.errMsg = ""

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return p, cmd
}

func (p *ProfileScreen) setFocus(f int) tea.Cmd {
	for i := range p.inputs {
		p.inputs[i].Model.Blur()
	}
	p.focus = f
	return p.inputs[f].Model.Focus()
}

func (p *ProfileScreen) submit() tea.Cmd {
	store := p.auth

	switch p.mode {
	case modeEdit:
		fields := api.Profile{
			Name:  strings.TrimSpace(p.inputs[editName].Value()),
			Grade: strings.TrimSpace(p.inputs[editGrade].Value()),
		}
		if raw := strings.TrimSpace(p.inputs[editSubjects].Value()); raw != "" {
			for _, s := range strings.Split(raw, ",") {
				if s = strings.TrimSpace(s); s != "" {
					fields.Subjects = append(fields.Subjects, s)
				}
			}
		}
		p.submitting = true
		return func() tea.Msg {
			err := store.UpdateProfile(context.Background(), fields)
			return resultMsg{err: err, msg: "Profile updated."}
		}

	case modeCurriculum:
		curriculum := strings.TrimSpace(p.inputs[0].Value())
		if curriculum == "" {
			p.errMsg = "Curriculum is required."
			return nil
		}
		p.submitting = true
		return func() tea.Msg {
			err := store.UpdateCurriculum(context.Background(), curriculum)
			return resultMsg{err: err, msg: "Curriculum updated."}
		}

	case modePassword:
		oldPw := p.inputs[pwOld].Value()
		newPw := p.inputs[pwNew].Value()
		confirm := p.inputs[pwConfirm].Value()
		switch {
		case oldPw == "" || newPw == "":
			p.errMsg = "All fields are required."
			return nil
		case newPw != confirm:
			p.errMsg = "New passwords do not match."
			return nil
		}
		p.submitting = true
		return func() tea.Msg {
			err := store.ChangePassword(context.Background(), oldPw, newPw)
			return resultMsg{err: err, msg: "Password changed."}
		}
	}
	return nil
}

func (p *ProfileScreen) View(width, height int) string {
	user := p.auth.User()
	if user == nil {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Sign in to see your profile.")
	}

	if p.mode == modeView {
		return p.renderView(user, width)
	}
	return p.renderForm(width)
}

func (p *ProfileScreen) renderView(user *auth.UserSession, width int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text)

	row := func(k, v string) string {
		if v == "" {
			v = "—"
		}
		return label.Render(k) + "  " + value.Render(v)
	}

	body := strings.Join([]string{
		row("Username  ", user.Username),
		row("Name      ", user.Name),
		row("Grade     ", user.Grade),
		row("Subjects  ", strings.Join(user.Subjects, ", ")),
		row("Curriculum", user.Curriculum),
	}, "\n")

	if p.statusMsg != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Success).Render(p.statusMsg)
	}
	if p.errMsg != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(p.errMsg)
	}

	card := theme.Card.Width(minInt(width-8, 64)).Render(body)
	return "\n" + theme.Title.Width(width).Render("Profile") + "\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func (p *ProfileScreen) renderForm(width int) string {
	var labels []string
	var title string
	switch p.mode {
	case modeEdit:
		title = "Edit Profile"
		labels = []string{"Name", "Grade", "Subjects"}
	case modeCurriculum:
		title = "Curriculum"
		labels = []string{"Curriculum"}
	case modePassword:
		title = "Change Password"
		labels = []string{"Current password", "New password", "Confirm new password"}
	}

	var rows []string
	for i, in := range p.inputs {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == p.focus {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		rows = append(rows, style.Render(labels[i])+"\n"+in.View())
	}
	body := strings.Join(rows, "\n")

	if p.submitting {
		body += "\n\n" + theme.Hint.Render("Saving...")
	} else if p.errMsg != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(p.errMsg)
	}

	card := theme.Card.Width(minInt(width-8, 64)).Render(body)
	return "\n" + theme.Title.Width(width).Render(title) + "\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
