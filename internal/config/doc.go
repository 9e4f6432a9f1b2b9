// Package config loads and saves the skim site configuration.
//
// The config is a passive record: title and chrome text, repository
// links, and feature toggles (next/prev navigation, search, theme
// toggle, footer). The reader and the exporter consume it; nothing in
// here has runtime behavior of its own.
//
// It lives as JSON under .skim/config.json in the working directory and
// supports $VAR / ${VAR} environment expansion in string values.
package config
