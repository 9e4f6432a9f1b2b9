// Package pager implements the article viewport: the current page
// rendered through glamour, scrollable, re-rendered on resize and theme
// changes.
package pager

import (
	"fmt"
	"strings"

	"github.com/skimdocs/skim/internal/docs"
	"github.com/skimdocs/skim/internal/tui/components/core"
	"github.com/skimdocs/skim/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// Model is the article viewport component.
type Model struct {
	viewport viewport.Model
	width    int
	height   int

	page    docs.Page
	hasPage bool
	footer  string // optional next/prev hint line under the content
}

var _ core.Component = (*Model)(nil)
var _ core.Sizeable = (*Model)(nil)

// New creates the pager.
func New() *Model {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	return &Model{viewport: vp}
}

// Init implements the Component interface
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements the Component interface
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// SetSize implements the Sizeable interface
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height

	m.viewport = viewport.New(
		viewport.WithWidth(width),
		viewport.WithHeight(height),
	)
	m.viewport.MouseWheelEnabled = true

	m.refresh()
	return nil
}

// View implements the Component interface
func (m *Model) View() string {
	return m.viewport.View()
}

// SetPage shows a handbook page, scrolled to the top.
func (m *Model) SetPage(page docs.Page, footer string) {
	m.page = page
	m.hasPage = true
	m.footer = footer
	m.refresh()
	m.viewport.GotoTop()
}

// SetMatches shows search results in place of the page.
func (m *Model) SetMatches(query string, matches []docs.Match, selected int) {
	m.page = docs.Page{Body: renderMatches(query, matches, selected)}
	m.hasPage = true
	m.footer = ""
	m.refresh()
	m.viewport.GotoTop()
}

// Refresh re-renders the current content. Call after a theme change.
func (m *Model) Refresh() {
	m.refresh()
}

// refresh runs the page through glamour at the current width.
func (m *Model) refresh() {
	if !m.hasPage || m.width == 0 {
		return
	}

	content := m.page.Body
	renderer := styles.GetMarkdownRenderer(m.width - 2)
	if renderer != nil {
		if rendered, err := renderer.Render(m.page.Body); err == nil {
			content = rendered
		}
	}

	if m.footer != "" {
		theme := styles.CurrentTheme()
		content += "\n" + theme.S().Subtle.Render(m.footer)
	}

	m.viewport.SetContent(content)
}

// renderMatches builds a markdown document out of search hits so the
// result list goes through the same renderer as everything else.
func renderMatches(query string, matches []docs.Match, selected int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Results for %q\n\n", query)

	if len(matches) == 0 {
		b.WriteString("No matches.\n")
		return b.String()
	}

	for i, match := range matches {
		marker := "-"
		if i == selected {
			marker = "- **▸**"
		}
		fmt.Fprintf(&b, "%s **%s** · line %d\n\n", marker, match.Title, match.Line)
		fmt.Fprintf(&b, "  > %s\n\n", match.Excerpt)
	}
	return b.String()
}
