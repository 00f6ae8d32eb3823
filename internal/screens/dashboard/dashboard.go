package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/raneesh-edsmartly/socratic/internal/auth"
	"github.com/raneesh-edsmartly/socratic/internal/screen"
	"github.com/raneesh-edsmartly/socratic/internal/store"
	"github.com/raneesh-edsmartly/socratic/internal/ui/layout"
	"github.com/raneesh-edsmartly/socratic/internal/ui/theme"
)

const historyLimit = 10

type attemptsMsg struct {
	records []store.AttemptRecord
	err     error
}

// DashboardScreen summarizes the signed-in user: profile at a glance
// and recent quiz performance from local history.
type DashboardScreen struct {
	auth     *auth.Store
	attempts store.AttemptRepo

	records []store.AttemptRecord
	loading bool
	errMsg  string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard screen.
func New(store *auth.Store, attempts store.AttemptRepo) *DashboardScreen {
	return &DashboardScreen{auth: store, attempts: attempts}
}

func (d *DashboardScreen) Title() string { return "Dashboard" }

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return d.load()
}

func (d *DashboardScreen) load() tea.Cmd {
	if d.attempts == nil {
		return nil
	}
	d.loading = true
	repo := d.attempts
	return func() tea.Msg {
		records, err := repo.Recent(context.Background(), historyLimit)
		return attemptsMsg{records: records, err: err}
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptsMsg:
		d.loading = false
		if msg.err != nil {
			d.errMsg = msg.err.Error()
			return d, nil
		}
		d.records = msg.records
		d.errMsg = ""
		return d, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			return d, d.load()
		}
	}
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	user := d.auth.User()
	if user == nil {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Sign in to see your dashboard.")
	}

	var sections []string

	// Profile card.
	name := user.Name
	if name == "" {
		name = user.Username
	}
	profile := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(name)
	meta := []string{}
	if user.Grade != "" {
		meta = append(meta, "grade "+user.Grade)
	}
	if user.Curriculum != "" {
		meta = append(meta, user.Curriculum)
	}
	if len(user.Subjects) > 0 {
		meta = append(meta, strings.Join(user.Subjects, ", "))
	}
	if len(meta) > 0 {
		profile += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(meta, " · "))
	}
	sections = append(sections, theme.Card.Width(minInt(width-8, 70)).Render(profile))

	// Performance summary.
	sections = append(sections, d.renderHistory(width))

	body := strings.Join(sections, "\n\n")
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func (d *DashboardScreen) renderHistory(width int) string {
	if d.loading {
		return theme.Hint.Render("Loading history...")
	}
	if d.errMsg != "" {
		return lipgloss.NewStyle().Foreground(theme.Error).Render(d.errMsg)
	}
	if len(d.records) == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("No quizzes taken yet. Results will show up here.")
	}

	header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render("Recent quizzes")

	totalScore, totalQuestions := 0, 0
	var rows []string
	for _, rec := range d.records {
		totalScore += rec.Score
		totalQuestions += rec.Total

		pct := 0
		if rec.Total > 0 {
			pct = rec.Score * 100 / rec.Total
		}
		scoreStyle := theme.Correct
		if pct < 50 {
			scoreStyle = theme.Incorrect
		}

		rows = append(rows, fmt.Sprintf("%s  %s  %s",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(rec.TakenAt.Format("Jan 02")),
			lipgloss.NewStyle().Foreground(theme.Text).Width(32).Render(truncate(rec.Topic, 32)),
			scoreStyle.Render(fmt.Sprintf("%d/%d (%d%%)", rec.Score, rec.Total, pct)),
		))
	}

	avg := 0
	if totalQuestions > 0 {
		avg = totalScore * 100 / totalQuestions
	}
	summary := lipgloss.NewStyle().Foreground(theme.Accent).
		Render(fmt.Sprintf("average %d%% over the last %d quizzes", avg, len(d.records)))

	body := header + "\n\n" + strings.Join(rows, "\n") + "\n\n" + summary
	return theme.Card.Width(minInt(width-8, 70)).Render(body)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
