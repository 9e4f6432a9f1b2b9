// Package tui assembles the reader: sidebar, pager, search bar, and
// status bar around an event broker and the search service.
package tui

import (
	"fmt"

	"github.com/skimdocs/skim/internal/config"
	"github.com/skimdocs/skim/internal/docs"
	"github.com/skimdocs/skim/internal/search"
	"github.com/skimdocs/skim/internal/tui/components/pager"
	"github.com/skimdocs/skim/internal/tui/components/searchbar"
	"github.com/skimdocs/skim/internal/tui/components/status"
	"github.com/skimdocs/skim/internal/tui/components/toc"
	"github.com/skimdocs/skim/internal/tui/events"
	"github.com/skimdocs/skim/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

const (
	sidebarWidth = 30
	statusHeight = 1
	searchHeight = 1
)

// Model is the top-level reader model.
type Model struct {
	width  int
	height int

	cfg      *config.Config
	registry *docs.Registry

	// Components
	toc       *toc.Model
	pager     *pager.Model
	searchbar *searchbar.Model
	statusBar *status.Component

	// Services
	searchSvc *search.Service

	// Event system
	eventBroker *events.Broker
	eventSub    <-chan events.Event

	// UI state
	current     int // index of the page being read
	searching   bool
	results     []docs.Match
	resultQuery string
	resultIndex int
}

// New creates the reader model.
func New(cfg *config.Config, registry *docs.Registry, broker *events.Broker, searchSvc *search.Service) *Model {
	styles.SetDefaultManager(styles.NewManager(cfg.Theme))

	footerText := ""
	if cfg.FooterEnabled {
		footerText = cfg.FooterText
	}

	m := &Model{
		cfg:         cfg,
		registry:    registry,
		toc:         toc.New(cfg.Logo, cfg.FullTitle(), registry.Pages()),
		pager:       pager.New(),
		searchbar:   searchbar.New(),
		statusBar:   status.New(footerText),
		searchSvc:   searchSvc,
		eventBroker: broker,
	}

	m.eventSub = broker.Subscribe()

	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.toc.Init(),
		m.pager.Init(),
		m.searchbar.Init(),
		m.statusBar.Init(),
		m.listenForEvents(),
	}

	m.eventBroker.PublishAsync(events.Event{
		Type: events.StatusMessageEvent,
		Payload: events.StatusMessagePayload{
			Message: "n/p to flip pages, / to search, q to quit",
			Type:    "info",
		},
	})

	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Events arrive as messages via the subscription pump.
	if event, ok := msg.(events.Event); ok {
		cmd := m.handleEvent(event)
		return m, tea.Batch(cmd, m.listenForEvents())
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.showPage(m.current)
		return m, nil

	case searchbar.QueryChangedMsg:
		m.searchSvc.Query(msg.Query)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Everything else (ticks, mouse) flows to the stateful components.
	var cmd tea.Cmd
	var pagerModel tea.Model
	pagerModel, cmd = m.pager.Update(msg)
	if pm, ok := pagerModel.(*pager.Model); ok {
		m.pager = pm
	}
	cmds = append(cmds, cmd)

	var statusModel tea.Model
	statusModel, cmd = m.statusBar.Update(msg)
	if sm, ok := statusModel.(*status.Component); ok {
		m.statusBar = sm
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKey routes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Keys that work everywhere.
	switch key {
	case "ctrl+c":
		return m.quit()
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch key {
	case "q":
		return m.quit()
	case "/":
		if m.cfg.SearchEnabled {
			m.searching = true
			return m, m.searchbar.Focus()
		}
		return m, nil
	case "n", "right":
		return m, m.flipPage(+1)
	case "p", "left":
		return m, m.flipPage(-1)
	case "t":
		if m.cfg.ThemeToggle {
			return m, m.toggleTheme()
		}
		return m, nil
	case "g":
		m.showPage(0)
		return m, nil
	case "G":
		m.showPage(m.registry.Len() - 1)
		return m, nil
	}

	// Scrolling keys fall through to the viewport.
	var cmd tea.Cmd
	pagerModel, cmd := m.pager.Update(msg)
	if pm, ok := pagerModel.(*pager.Model); ok {
		m.pager = pm
	}
	return m, cmd
}

// handleSearchKey routes keys while the search bar has focus.
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.exitSearch()
		return m, nil
	case "enter":
		if len(m.results) > 0 {
			match := m.results[m.resultIndex]
			m.eventBroker.Publish(events.Event{
				Type:    events.PageSelectedEvent,
				Payload: events.PageSelectedPayload{Slug: match.Slug, Line: match.Line},
			})
		}
		return m, nil
	case "up":
		if m.resultIndex > 0 {
			m.resultIndex--
			m.pager.SetMatches(m.resultQuery, m.results, m.resultIndex)
		}
		return m, nil
	case "down":
		if m.resultIndex < len(m.results)-1 {
			m.resultIndex++
			m.pager.SetMatches(m.resultQuery, m.results, m.resultIndex)
		}
		return m, nil
	}

	var cmd tea.Cmd
	barModel, cmd := m.searchbar.Update(msg)
	if sb, ok := barModel.(*searchbar.Model); ok {
		m.searchbar = sb
	}
	return m, cmd
}

// handleEvent turns broker events into view updates.
func (m *Model) handleEvent(event events.Event) tea.Cmd {
	switch event.Type {
	case events.SearchResultsEvent:
		if payload, ok := event.Payload.(events.SearchResultsPayload); ok {
			m.results = payload.Matches
			m.resultQuery = payload.Query
			m.resultIndex = 0
			m.pager.SetMatches(payload.Query, payload.Matches, 0)
			return m.statusBar.ShowInfo(fmt.Sprintf("%d matches", len(payload.Matches)))
		}

	case events.SearchClearedEvent:
		m.results = nil
		m.resultQuery = ""
		m.resultIndex = 0
		if m.searching {
			m.showPage(m.current)
		}

	case events.SearchFailedEvent:
		if payload, ok := event.Payload.(events.SearchFailedPayload); ok {
			return m.statusBar.ShowError(payload.Err.Error())
		}

	case events.PageSelectedEvent:
		if payload, ok := event.Payload.(events.PageSelectedPayload); ok {
			if page, ok := m.registry.BySlug(payload.Slug); ok {
				m.exitSearch()
				m.showPage(page.Index)
			}
		}

	case events.ThemeToggledEvent:
		if payload, ok := event.Payload.(events.ThemeToggledPayload); ok {
			m.pager.Refresh()
			return m.statusBar.ShowSuccess("theme: " + payload.Name)
		}

	case events.StatusMessageEvent:
		if payload, ok := event.Payload.(events.StatusMessagePayload); ok {
			switch payload.Type {
			case "warning":
				return m.statusBar.ShowWarning(payload.Message)
			case "error":
				return m.statusBar.ShowError(payload.Message)
			case "success":
				return m.statusBar.ShowSuccess(payload.Message)
			default:
				return m.statusBar.ShowInfo(payload.Message)
			}
		}
	}

	return nil
}

// View implements tea.Model
func (m *Model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.NewView("Loading…")
	}

	theme := styles.CurrentTheme()

	mainWidth := m.width - sidebarWidth
	mainHeight := m.height - statusHeight - searchHeight - 2 // borders

	sidebarStyle := lipgloss.NewStyle().
		Width(sidebarWidth - 2).
		Height(m.height - statusHeight).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
	sidebarView := sidebarStyle.Render(m.toc.View())

	pagerBorder := theme.Border
	if !m.searching {
		pagerBorder = theme.BorderFocus
	}
	pagerStyle := lipgloss.NewStyle().
		Width(mainWidth - 2).
		Height(mainHeight).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(pagerBorder)
	pagerView := pagerStyle.Render(m.pager.View())

	searchView := ""
	if m.cfg.SearchEnabled {
		searchStyle := lipgloss.NewStyle().
			Width(mainWidth).
			Height(searchHeight).
			Padding(0, 1)
		searchView = searchStyle.Render(m.searchbar.View())
	}

	mainContent := lipgloss.JoinVertical(lipgloss.Left, pagerView, searchView)
	topSection := lipgloss.JoinHorizontal(lipgloss.Top, sidebarView, mainContent)

	statusStyle := lipgloss.NewStyle().
		Width(m.width).
		Background(theme.BgBase).
		Foreground(theme.FgBase)
	statusView := statusStyle.Render(m.statusBar.View())

	return tea.NewView(lipgloss.JoinVertical(lipgloss.Left, topSection, statusView))
}

// layout pushes the current dimensions into the components.
func (m *Model) layout() {
	mainWidth := m.width - sidebarWidth
	mainHeight := m.height - statusHeight - searchHeight - 2

	m.toc.SetSize(sidebarWidth-2, m.height-statusHeight)
	m.pager.SetSize(mainWidth-2, mainHeight)
	m.searchbar.SetSize(mainWidth, searchHeight)
	m.statusBar.SetSize(m.width, statusHeight)
}

// showPage displays the page at index i and updates the TOC marker.
func (m *Model) showPage(i int) {
	page, ok := m.registry.At(i)
	if !ok {
		return
	}
	m.current = i
	m.toc.SetCurrent(i)
	m.pager.SetPage(page, m.navFooter(page))
}

// navFooter builds the next/prev hint line, honoring the config toggle.
func (m *Model) navFooter(page docs.Page) string {
	if !m.cfg.ShowNextPrev {
		return ""
	}

	footer := ""
	if prev, ok := m.registry.Prev(page.Slug); ok {
		footer += "← p: " + prev.Title
	}
	if next, ok := m.registry.Next(page.Slug); ok {
		if footer != "" {
			footer += "   ·   "
		}
		footer += "n: " + next.Title + " →"
	}
	return footer
}

// flipPage moves to the adjacent page when navigation is enabled.
func (m *Model) flipPage(delta int) tea.Cmd {
	if !m.cfg.ShowNextPrev {
		return nil
	}
	target := m.current + delta
	if _, ok := m.registry.At(target); !ok {
		if delta > 0 {
			return m.statusBar.ShowInfo("last page")
		}
		return m.statusBar.ShowInfo("first page")
	}
	m.showPage(target)
	return nil
}

// toggleTheme flips dark/light and announces it on the broker.
func (m *Model) toggleTheme() tea.Cmd {
	name := styles.DefaultManager().Toggle()
	m.eventBroker.PublishAsync(events.Event{
		Type:    events.ThemeToggledEvent,
		Payload: events.ThemeToggledPayload{Name: name},
	})
	return nil
}

// exitSearch leaves search mode and restores the current page.
func (m *Model) exitSearch() {
	if !m.searching {
		return
	}
	m.searching = false
	m.searchbar.Reset()
	m.searchbar.Blur()
	m.searchSvc.Clear()
	m.showPage(m.current)
}

// quit tears down services before stopping the program. The search
// service owns a guard and a debouncer; both must die with the UI.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.searchSvc.Close()
	return m, tea.Quit
}

// listenForEvents pumps the next broker event into the update loop.
func (m *Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		event := <-m.eventSub
		return event
	}
}
