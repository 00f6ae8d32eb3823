package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	quizflow "github.com/raneesh-edsmartly/socratic/internal/quiz"
	"github.com/raneesh-edsmartly/socratic/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch s.ctrl.Phase() {
	case quizflow.PhaseGenerating:
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Generating questions...")
	case quizflow.PhaseInProgress:
		return s.renderQuestion(width, height)
	case quizflow.PhaseFinished:
		return s.renderReview(width, height)
	default:
		return s.renderForm(width, height)
	}
}

func (s *QuizScreen) renderForm(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Quiz Settings"))
	b.WriteString("\n\n")

	var rows []string
	for i := range s.form.inputs {
		label := fieldLabels[i]
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.form.focus {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		rows = append(rows, style.Render(label)+"\n"+s.form.inputs[i].View())
	}

	formBody := strings.Join(rows, "\n")

	errMsg := s.form.errMsg
	if errMsg == "" {
		errMsg = s.ctrl.Err()
	}
	if errMsg != "" {
		formBody += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(errMsg)
	}

	card := theme.Card.Width(minInt(width-8, 64)).Render(formBody)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	return b.String()
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	attempt := s.ctrl.Attempt()
	if attempt == nil || s.current >= len(attempt.Questions) {
		return ""
	}
	q := attempt.Questions[s.current]

	var b strings.Builder

	// Status line: progress, answered count, countdown.
	answered := 0
	for range attempt.Selected {
		answered++
	}
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.current+1, len(attempt.Questions)))
	rightText := fmt.Sprintf("answered %d/%d", answered, len(attempt.Questions))
	if s.ctrl.Remaining() >= 0 {
		rightText += "  " + formatClock(s.ctrl.Remaining())
	}
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(rightText)

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	line := left
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 1))))
	b.WriteString("\n\n")

	question := lipgloss.NewStyle().
		Width(minInt(width-8, 80)).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, question))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))

	if s.ctrl.Err() != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.ctrl.Err()))
	}

	return b.String()
}

func (s *QuizScreen) renderReview(width, height int) string {
	attempt := s.ctrl.Attempt()
	if attempt == nil {
		return ""
	}

	total := len(attempt.Questions)
	pct := 0
	if total > 0 {
		pct = attempt.Score * 100 / total
	}

	var lines []string
	header := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Score: %d/%d (%d%%)", attempt.Score, total, pct))
	lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, header), "")

	textWidth := minInt(width-10, 76)
	for i, q := range attempt.Questions {
		res := attempt.Results[q.ID]

		var verdict string
		if res.IsCorrect {
			verdict = theme.Correct.Render("✓ correct")
		} else if res.SelectedAnswer == "" {
			verdict = theme.Incorrect.Render("✗ unanswered")
		} else {
			verdict = theme.Incorrect.Render("✗ incorrect")
		}

		qline := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(textWidth).
			Render(fmt.Sprintf("%d. %s", i+1, q.Text))
		lines = append(lines, splitLines("  ", qline)...)
		lines = append(lines, "     "+verdict)
		if res.SelectedAnswer != "" && !res.IsCorrect {
			lines = append(lines, "     "+lipgloss.NewStyle().Foreground(theme.Error).Render("your answer: "+res.SelectedAnswer))
		}
		if res.CorrectAnswer != "" && !res.IsCorrect {
			lines = append(lines, "     "+lipgloss.NewStyle().Foreground(theme.Success).Render("correct answer: "+res.CorrectAnswer))
		}
		if res.Explanation != "" {
			exp := lipgloss.NewStyle().Foreground(theme.TextDim).Width(textWidth).Render(res.Explanation)
			lines = append(lines, splitLines("     ", exp)...)
		}
		lines = append(lines, "")
	}

	lines = append(lines, theme.Hint.Render("  press R for a new quiz"))

	start := s.resultScroll
	if start > len(lines)-1 {
		start = maxInt(len(lines)-1, 0)
		s.resultScroll = start
	}
	end := minInt(start+height, len(lines))

	return strings.Join(lines[start:end], "\n")
}

func splitLines(indent, block string) []string {
	parts := strings.Split(block, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, indent+p)
	}
	return out
}

func formatClock(seconds int) string {
	return fmt.Sprintf("⏱ %d:%02d", seconds/60, seconds%60)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
