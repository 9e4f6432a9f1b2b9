// Package searchbar implements the one-line search input.
//
// The bar only edits text and reports changes; debouncing and the
// stale-response handling live in the search service it feeds.
package searchbar

import (
	"unicode/utf8"

	"github.com/skimdocs/skim/internal/tui/components/core"
	"github.com/skimdocs/skim/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// QueryChangedMsg is emitted whenever the input text changes.
type QueryChangedMsg struct {
	Query string
}

// Model implements the search input component. The value is kept as
// runes so the cursor moves by character, not by byte.
type Model struct {
	value       []rune
	placeholder string
	cursorPos   int
	width       int
	focused     bool
}

var _ core.Component = (*Model)(nil)
var _ core.Sizeable = (*Model)(nil)
var _ core.Focusable = (*Model)(nil)

// New creates the search bar.
func New() *Model {
	return &Model{
		placeholder: "search the handbook",
	}
}

// Init implements the Component interface
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements the Component interface
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	before := m.Value()
	switch keyStr := keyMsg.String(); keyStr {
	case "backspace":
		m.backspace()
	case "delete":
		m.deleteForward()
	case "left":
		if m.cursorPos > 0 {
			m.cursorPos--
		}
	case "right":
		if m.cursorPos < len(m.value) {
			m.cursorPos++
		}
	case "home", "ctrl+a":
		m.cursorPos = 0
	case "end", "ctrl+e":
		m.cursorPos = len(m.value)
	case "ctrl+u":
		m.value = nil
		m.cursorPos = 0
	case "space":
		// Bubble Tea v2 reports the space key as "space", not " "
		m.insert(" ")
	default:
		if utf8.RuneCountInString(keyStr) == 1 {
			m.insert(keyStr)
		}
	}

	if m.Value() != before {
		return m, m.queryChanged()
	}
	return m, nil
}

// SetSize implements the Sizeable interface
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width = width
	return nil
}

// Focus implements the Focusable interface
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return nil
}

// Blur implements the Focusable interface
func (m *Model) Blur() tea.Cmd {
	m.focused = false
	return nil
}

// Focused implements the Focusable interface
func (m *Model) Focused() bool {
	return m.focused
}

// Value returns the current query text.
func (m *Model) Value() string {
	return string(m.value)
}

// Reset clears the input.
func (m *Model) Reset() {
	m.value = nil
	m.cursorPos = 0
}

// IsEmpty reports whether there is no query text.
func (m *Model) IsEmpty() bool {
	return len(m.value) == 0
}

// View implements the Component interface
func (m *Model) View() string {
	s := styles.CurrentTheme().S()

	if !m.focused && len(m.value) == 0 {
		return s.Subtle.Render("/ " + m.placeholder)
	}

	// Draw a simple block cursor at the insertion point.
	text := m.value
	var rendered string
	switch {
	case m.cursorPos >= len(text):
		rendered = s.Base.Render(string(text)) + s.Selected.Render(" ")
	default:
		rendered = s.Base.Render(string(text[:m.cursorPos])) +
			s.Selected.Render(string(text[m.cursorPos])) +
			s.Base.Render(string(text[m.cursorPos+1:]))
	}

	return s.Title.Render("/ ") + rendered
}

// insert puts text at the cursor.
func (m *Model) insert(text string) {
	runes := []rune(text)
	tail := append(runes, m.value[m.cursorPos:]...)
	m.value = append(m.value[:m.cursorPos:m.cursorPos], tail...)
	m.cursorPos += len(runes)
}

// backspace removes the rune before the cursor.
func (m *Model) backspace() {
	if m.cursorPos > 0 {
		m.value = append(m.value[:m.cursorPos-1], m.value[m.cursorPos:]...)
		m.cursorPos--
	}
}

// deleteForward removes the rune under the cursor.
func (m *Model) deleteForward() {
	if m.cursorPos < len(m.value) {
		m.value = append(m.value[:m.cursorPos], m.value[m.cursorPos+1:]...)
	}
}

// queryChanged emits the change notification as a command.
func (m *Model) queryChanged() tea.Cmd {
	query := string(m.value)
	return func() tea.Msg {
		return QueryChangedMsg{Query: query}
	}
}
