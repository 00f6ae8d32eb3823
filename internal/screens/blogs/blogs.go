package blogs

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/raneesh-edsmartly/socratic/internal/api"
	"github.com/raneesh-edsmartly/socratic/internal/screen"
	"github.com/raneesh-edsmartly/socratic/internal/ui/components"
	"github.com/raneesh-edsmartly/socratic/internal/ui/layout"
	"github.com/raneesh-edsmartly/socratic/internal/ui/theme"
)

const pageSize = 20

type mode int

const (
	modeList mode = iota
	modeDetail
	modeSearch
	modeCategory
)

type listMsg struct {
	blogs []api.Blog
	err   error
}

type detailMsg struct {
	blog *api.Blog
	err  error
}

// BlogsScreen browses published posts: paged list, free-text search,
// category filter, and a reading view.
type BlogsScreen struct {
	api *api.Client

	mode     mode
	blogs    []api.Blog
	selected int
	detail   *api.Blog
	input    components.TextInput

	skip    int
	loading bool
	errMsg  string

	readScroll int
}

var _ screen.Screen = (*BlogsScreen)(nil)
var _ screen.KeyHintProvider = (*BlogsScreen)(nil)

// New creates the blogs screen.
func New(client *api.Client) *BlogsScreen {
	return &BlogsScreen{
		api:   client,
		input: components.NewTextInput("", false, 120),
	}
}

func (b *BlogsScreen) Title() string { return "Blogs" }

func (b *BlogsScreen) KeyHints() []layout.KeyHint {
	switch b.mode {
	case modeDetail:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Backspace", Description: "List"},
			{Key: "Esc", Description: "Back"},
		}
	case modeSearch, modeCategory:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Read"},
			{Key: "/", Description: "Search"},
			{Key: "C", Description: "Category"},
			{Key: "N/P", Description: "Page"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (b *BlogsScreen) Init() tea.Cmd {
	return b.loadPage(0)
}

func (b *BlogsScreen) loadPage(skip int) tea.Cmd {
	b.loading = true
	b.errMsg = ""
	client := b.api
	return func() tea.Msg {
		blogs, err := client.ListBlogs(context.Background(), skip, pageSize)
		return listMsg{blogs: blogs, err: err}
	}
}

func (b *BlogsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case listMsg:
		b.loading = false
		if msg.err != nil {
			b.errMsg = msg.err.Error()
			return b, nil
		}
		b.blogs = msg.blogs
		b.selected = 0
		b.mode = modeList
		return b, nil

	case detailMsg:
		b.loading = false
		if msg.err != nil {
			b.errMsg = msg.err.Error()
			return b, nil
		}
		b.detail = msg.blog
		b.readScroll = 0
		b.mode = modeDetail
		return b, nil

	case tea.KeyMsg:
		switch b.mode {
		case modeList:
			return b.updateList(msg)
		case modeDetail:
			return b.updateDetail(msg)
		case modeSearch, modeCategory:
			return b.updateInput(msg)
		}
	}
	return b, nil
}

func (b *BlogsScreen) updateList(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if b.selected > 0 {
			b.selected--
		}
	case "down", "j":
		if b.selected < len(b.blogs)-1 {
			b.selected++
		}
	case "enter":
		if b.selected < len(b.blogs) {
			return b, b.openDetail(b.blogs[b.selected].ID)
		}
	case "/":
		b.mode = modeSearch
		b.input = components.NewTextInput("search posts", false, 120)
		return b, b.input.Init()
	case "c":
		b.mode = modeCategory
		b.input = components.NewTextInput("category", false, 60)
		return b, b.input.Init()
	case "n":
		if len(b.blogs) == pageSize {
			b.skip += pageSize
			return b, b.loadPage(b.skip)
		}
	case "p":
		if b.skip > 0 {
			b.skip -= pageSize
			if b.skip < 0 {
				b.skip = 0
			}
			return b, b.loadPage(b.skip)
		}
	}
	return b, nil
}

func (b *BlogsScreen) openDetail(id string) tea.Cmd {
	b.loading = true
	b.errMsg = ""
	client := b.api
	return func() tea.Msg {
		blog, err := client.GetBlog(context.Background(), id)
		return detailMsg{blog: blog, err: err}
	}
}

func (b *BlogsScreen) updateDetail(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "backspace", "left":
		b.mode = modeList
		b.detail = nil
	case "up", "k":
		if b.readScroll > 0 {
			b.readScroll--
		}
	case "down", "j":
		b.readScroll++
	}
	return b, nil
}

func (b *BlogsScreen) updateInput(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "enter" {
		query := strings.TrimSpace(b.input.Value())
		if query == "" {
			b.mode = modeList
			return b, nil
		}
		b.loading = true
		b.errMsg = ""
		client := b.api
		if b.mode == modeSearch {
			return b, func() tea.Msg {
				blogs, err := client.SearchBlogs(context.Background(), query)
				return listMsg{blogs: blogs, err: err}
			}
		}
		return b, func() tea.Msg {
			blogs, err := client.BlogsByCategory(context.Background(), query)
			return listMsg{blogs: blogs, err: err}
		}
	}

	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd
}

func (b *BlogsScreen) View(width, height int) string {
	if b.loading {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Loading...")
	}

	switch b.mode {
	case modeDetail:
		return b.renderDetail(width, height)
	case modeSearch:
		return b.renderPrompt(width, "Search posts")
	case modeCategory:
		return b.renderPrompt(width, "Filter by category")
	default:
		return b.renderList(width, height)
	}
}

func (b *BlogsScreen) renderPrompt(width int, label string) string {
	body := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label) +
		"\n" + b.input.View()
	card := theme.Card.Width(minInt(width-8, 60)).Render(body)
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func (b *BlogsScreen) renderList(width, height int) string {
	var lines []string

	if b.errMsg != "" {
		lines = append(lines, "  "+lipgloss.NewStyle().Foreground(theme.Error).Render(b.errMsg), "")
	}

	if len(b.blogs) == 0 {
		lines = append(lines, "  "+lipgloss.NewStyle().Foreground(theme.TextDim).Render("No posts found."))
		return strings.Join(lines, "\n")
	}

	for i, blog := range b.blogs {
		title := blog.Title
		meta := fmt.Sprintf("%s · %s · %s", blog.Author, blog.Category, blog.Date)

		if i == b.selected {
			lines = append(lines,
				lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ▸ "+title),
				"    "+lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta))
		} else {
			lines = append(lines,
				lipgloss.NewStyle().Foreground(theme.Text).Render("    "+title),
				"    "+lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta))
		}
		lines = append(lines, "")
	}

	page := b.skip/pageSize + 1
	lines = append(lines, theme.Hint.Render(fmt.Sprintf("  page %d", page)))

	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (b *BlogsScreen) renderDetail(width, height int) string {
	if b.detail == nil {
		return ""
	}
	textWidth := minInt(width-8, 80)

	var lines []string
	lines = append(lines, "  "+lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(b.detail.Title))
	meta := fmt.Sprintf("%s · %s · %s", b.detail.Author, b.detail.Category, b.detail.Date)
	lines = append(lines, "  "+lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta), "")

	body := lipgloss.NewStyle().Foreground(theme.Text).Width(textWidth).Render(b.detail.Content)
	for _, l := range strings.Split(body, "\n") {
		lines = append(lines, "  "+l)
	}

	start := b.readScroll
	if start > len(lines)-1 {
		start = maxInt(len(lines)-1, 0)
		b.readScroll = start
	}
	end := minInt(start+height, len(lines))
	return strings.Join(lines[start:end], "\n")
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
