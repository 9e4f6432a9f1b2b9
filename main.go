// Package main is the entry point for the skim reader.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/skimdocs/skim/internal/config"
	"github.com/skimdocs/skim/internal/docs"
	"github.com/skimdocs/skim/internal/search"
	"github.com/skimdocs/skim/internal/tui"
	"github.com/skimdocs/skim/internal/tui/events"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// searchDebounce is the keystroke quiet period before a search fires.
const searchDebounce = 250 * time.Millisecond

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	workingDir, err := os.Getwd()
	if err != nil {
		workingDir = "."
	}

	configManager := config.NewManager(workingDir)
	if err := configManager.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := configManager.Get()

	registry, err := docs.Load()
	if err != nil {
		return fmt.Errorf("failed to load handbook: %w", err)
	}

	broker := events.NewBroker()
	searchSvc := search.NewService(registry, broker, searchDebounce)
	defer searchSvc.Close()

	model := tui.New(cfg, registry, broker, searchSvc)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}
