package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Config is the skim site configuration
type Config struct {
	// Site identity
	Title       string `json:"title"`
	TitleSuffix string `json:"title_suffix"`
	Logo        string `json:"logo"`
	HeadMarkup  string `json:"head_markup"`

	// Repository links
	RepoURL     string `json:"repo_url"`
	DocsRepoURL string `json:"docs_repo_url"`
	DocsBranch  string `json:"docs_branch"`
	DocsPath    string `json:"docs_path"`

	// Feature toggles
	ShowNextPrev  bool `json:"show_next_prev"`
	SearchEnabled bool `json:"search_enabled"`
	ThemeToggle   bool `json:"theme_toggle"`

	// Footer
	FooterEnabled bool   `json:"footer_enabled"`
	FooterText    string `json:"footer_text"`

	// UI preferences
	Theme string `json:"theme"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Title:         "Async Pitfalls Handbook",
		TitleSuffix:   " · skim",
		Logo:          "⛵ skim",
		RepoURL:       "https://github.com/skimdocs/skim",
		DocsRepoURL:   "https://github.com/skimdocs/skim",
		DocsBranch:    "main",
		DocsPath:      "internal/docs/pages",
		ShowNextPrev:  true,
		SearchEnabled: true,
		ThemeToggle:   true,
		FooterEnabled: true,
		FooterText:    "skim · latest result wins",
		Theme:         "skim-dark",
	}
}

// Manager handles configuration loading and saving
type Manager struct {
	configPath string
	config     *Config
}

// NewManager creates a configuration manager rooted at the given site
// directory. The config file lives at <siteDir>/.skim/config.json.
func NewManager(siteDir string) *Manager {
	skimDir := filepath.Join(siteDir, ".skim")
	return &Manager{
		configPath: filepath.Join(skimDir, "config.json"),
		config:     DefaultConfig(),
	}
}

// Load reads the configuration from disk, creating defaults if needed
func (m *Manager) Load() error {
	skimDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(skimDir, 0o755); err != nil {
		return fmt.Errorf("failed to create .skim directory: %w", err)
	}

	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		// First run: write defaults so they are discoverable
		return m.Save()
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}

	m.expandEnvVars(&cfg)
	m.config = &cfg
	return nil
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	return m.config
}

// Set updates a configuration value by key and saves
func (m *Manager) Set(key, value string) error {
	switch key {
	case "title":
		m.config.Title = value
	case "title_suffix":
		m.config.TitleSuffix = value
	case "logo":
		m.config.Logo = value
	case "head_markup":
		m.config.HeadMarkup = value
	case "repo_url":
		m.config.RepoURL = value
	case "docs_repo_url":
		m.config.DocsRepoURL = value
	case "docs_branch":
		m.config.DocsBranch = value
	case "docs_path":
		m.config.DocsPath = value
	case "show_next_prev":
		m.config.ShowNextPrev = value == "true"
	case "search_enabled":
		m.config.SearchEnabled = value == "true"
	case "theme_toggle":
		m.config.ThemeToggle = value == "true"
	case "footer_enabled":
		m.config.FooterEnabled = value == "true"
	case "footer_text":
		m.config.FooterText = value
	case "theme":
		m.config.Theme = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	return m.Save()
}

// FullTitle returns the site title with its suffix applied.
func (c *Config) FullTitle() string {
	return c.Title + c.TitleSuffix
}

// expandEnvVars expands environment variables in string config values
func (m *Manager) expandEnvVars(cfg *Config) {
	cfg.Title = expandString(cfg.Title)
	cfg.TitleSuffix = expandString(cfg.TitleSuffix)
	cfg.Logo = expandString(cfg.Logo)
	cfg.HeadMarkup = expandString(cfg.HeadMarkup)
	cfg.RepoURL = expandString(cfg.RepoURL)
	cfg.DocsRepoURL = expandString(cfg.DocsRepoURL)
	cfg.DocsBranch = expandString(cfg.DocsBranch)
	cfg.DocsPath = expandString(cfg.DocsPath)
	cfg.FooterText = expandString(cfg.FooterText)
	cfg.Theme = expandString(cfg.Theme)
}

var envVarRe = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// expandString expands environment variables in a string.
// Supports $VAR and ${VAR} syntax; unknown variables are left as-is.
func expandString(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}
		return match
	})
}
