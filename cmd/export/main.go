// Command export renders the whole handbook to stdout: the static-site
// half of skim, for piping into a pager or a file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/skimdocs/skim/internal/config"
	"github.com/skimdocs/skim/internal/docs"
	"github.com/skimdocs/skim/internal/tui/styles"
)

func main() {
	width := flag.Int("width", 80, "wrap width for rendered output")
	theme := flag.String("theme", "", "theme name (default: configured theme)")
	plain := flag.Bool("plain", false, "emit stripped plain text instead of ANSI")
	flag.Parse()

	if err := run(*width, *theme, *plain); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(width int, themeName string, plain bool) error {
	workingDir, err := os.Getwd()
	if err != nil {
		workingDir = "."
	}

	configManager := config.NewManager(workingDir)
	if err := configManager.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := configManager.Get()

	if themeName == "" {
		themeName = cfg.Theme
	}
	manager := styles.NewManager(themeName)
	if err := manager.SetTheme(themeName); err != nil {
		return fmt.Errorf("unknown theme: %w", err)
	}
	styles.SetDefaultManager(manager)

	registry, err := docs.Load()
	if err != nil {
		return fmt.Errorf("failed to load handbook: %w", err)
	}

	out := &strings.Builder{}
	writeHeader(out, cfg, width)

	for _, page := range registry.Pages() {
		if plain {
			out.WriteString(docs.PlainText(page.Body))
			out.WriteString("\n")
			continue
		}

		renderer := styles.GetMarkdownRenderer(width)
		rendered, err := renderer.Render(page.Body)
		if err != nil {
			return fmt.Errorf("failed to render page %s: %w", page.Slug, err)
		}
		out.WriteString(rendered)
		out.WriteString("\n")
	}

	writeFooter(out, cfg, width)

	fmt.Print(out.String())
	return nil
}

// writeHeader emits the head markup, site title line, and source link.
func writeHeader(out *strings.Builder, cfg *config.Config, width int) {
	if cfg.HeadMarkup != "" {
		fmt.Fprintf(out, "%s\n", cfg.HeadMarkup)
	}
	rule := strings.Repeat("═", width)
	fmt.Fprintf(out, "%s\n%s\n", cfg.FullTitle(), rule)
	if cfg.RepoURL != "" {
		fmt.Fprintf(out, "source: %s (%s)\n", cfg.RepoURL, cfg.DocsBranch)
	}
	out.WriteString("\n")
}

// writeFooter emits the configured footer, if enabled.
func writeFooter(out *strings.Builder, cfg *config.Config, width int) {
	if !cfg.FooterEnabled || cfg.FooterText == "" {
		return
	}
	rule := strings.Repeat("─", width)
	fmt.Fprintf(out, "%s\n%s\n", rule, cfg.FooterText)
}
