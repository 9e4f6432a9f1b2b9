// Package toc implements the table-of-contents sidebar.
package toc

import (
	"fmt"
	"strings"

	"github.com/skimdocs/skim/internal/docs"
	"github.com/skimdocs/skim/internal/tui/components/core"
	"github.com/skimdocs/skim/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// Model renders the sidebar: logo, site title, and the page list with a
// marker on the page currently shown.
type Model struct {
	width  int
	height int

	logo    string
	title   string
	pages   []docs.Page
	current int
}

var _ core.Component = (*Model)(nil)
var _ core.Sizeable = (*Model)(nil)

// New creates the TOC sidebar.
func New(logo, title string, pages []docs.Page) *Model {
	return &Model{
		logo:  logo,
		title: title,
		pages: pages,
	}
}

// Init implements the Component interface
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements the Component interface. The TOC is passive; page
// selection is driven by the app model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// SetSize implements the Sizeable interface
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height
	return nil
}

// SetCurrent marks the page at index i as the one being read.
func (m *Model) SetCurrent(i int) {
	if i >= 0 && i < len(m.pages) {
		m.current = i
	}
}

// Current returns the marked page index.
func (m *Model) Current() int {
	return m.current
}

// View implements the Component interface
func (m *Model) View() string {
	theme := styles.CurrentTheme()
	s := theme.S()

	var b strings.Builder

	if m.logo != "" {
		b.WriteString(styles.ApplyBoldGradient(m.logo, theme.Primary, theme.Accent))
		b.WriteString("\n")
	}
	if m.title != "" {
		b.WriteString(s.Subtitle.Render(truncate(m.title, m.width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, p := range m.pages {
		line := fmt.Sprintf("%d. %s", i+1, p.Title)
		line = truncate(line, m.width-2)
		if i == m.current {
			b.WriteString(s.Selected.Render("▸ " + line))
		} else {
			b.WriteString(s.Muted.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// truncate clips a line to the available width.
func truncate(str string, width int) string {
	if width <= 3 || len(str) <= width {
		return str
	}
	return str[:width-1] + "…"
}
