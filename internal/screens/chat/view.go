package chat

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	chatflow "github.com/raneesh-edsmartly/socratic/internal/chat"
	"github.com/raneesh-edsmartly/socratic/internal/ui/theme"
)

const endSessionTimeout = 5 * time.Second

func (c *ChatScreen) View(width, height int) string {
	inputArea := c.renderInputArea(width)
	inputHeight := lipgloss.Height(inputArea)

	transcriptHeight := height - inputHeight - 1
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	transcript := c.renderTranscript(width, transcriptHeight)

	return transcript + "\n" + inputArea
}

func (c *ChatScreen) renderTranscript(width, height int) string {
	msgs := c.ctrl.Transcript()
	if len(msgs) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Ask a question to start a Socratic dialogue.\nThe tutor answers with guiding questions, not solutions.")
	}

	textWidth := width - 6
	if textWidth < 20 {
		textWidth = 20
	}

	var lines []string
	for _, m := range msgs {
		lines = append(lines, renderMessage(m, textWidth)...)
		lines = append(lines, "")
	}

	if c.ctrl.Status() == chatflow.StatusAwaitingReply {
		lines = append(lines, theme.Hint.Render("  Tutor is thinking..."))
	}

	// Pin to the bottom, offset by the scroll position.
	end := len(lines) - c.scroll
	if end > len(lines) {
		end = len(lines)
	}
	if end < 0 {
		end = 0
	}
	start := end - height
	if start < 0 {
		start = 0
	}

	return strings.Join(lines[start:end], "\n")
}

func renderMessage(m chatflow.Message, textWidth int) []string {
	var label string
	var style lipgloss.Style
	switch m.Sender {
	case chatflow.SenderUser:
		label = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("  You")
		style = lipgloss.NewStyle().Foreground(theme.Text).Width(textWidth)
	default:
		label = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Tutor")
		style = lipgloss.NewStyle().Foreground(theme.Text).Width(textWidth)
	}

	body := style.Render(m.Text)
	lines := []string{label}
	for _, l := range strings.Split(body, "\n") {
		lines = append(lines, "    "+l)
	}

	if level, ok := m.Details["cognitive_level"].(string); ok && level != "" {
		lines = append(lines, "    "+theme.Hint.Render("level: "+level))
	}
	return lines
}

func (c *ChatScreen) renderInputArea(width int) string {
	var parts []string

	if c.ctrl.Status() == chatflow.StatusError && c.ctrl.Err() != "" {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(theme.Error).
			Width(width-4).
			Render("  "+c.ctrl.Err()))
	}

	divider := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", max(width-2, 1)))
	parts = append(parts, divider)
	parts = append(parts, "  "+c.input.View())

	return strings.Join(parts, "\n")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
