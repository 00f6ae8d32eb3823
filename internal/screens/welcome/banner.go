package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/raneesh-edsmartly/socratic/internal/ui/theme"
)

const bannerArt = `███████  ██████   ██████ ██████   █████  ████████ ██  ██████
██      ██    ██ ██      ██   ██ ██   ██    ██    ██ ██
███████ ██    ██ ██      ██████  ███████    ██    ██ ██
     ██ ██    ██ ██      ██   ██ ██   ██    ██    ██ ██
███████  ██████   ██████ ██   ██ ██   ██    ██    ██  ██████`

const compactBanner = `S O C R A T I C`

// RenderBanner renders the title banner, falling back to plain text
// when the terminal is too narrow for the block art.
func RenderBanner(width int) string {
	art := bannerArt
	artWidth := 0
	for _, line := range strings.Split(art, "\n") {
		if len([]rune(line)) > artWidth {
			artWidth = len([]rune(line))
		}
	}
	if width < artWidth+4 {
		art = compactBanner
	}

	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(art)
}
