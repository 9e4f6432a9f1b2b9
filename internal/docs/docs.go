// Package docs holds the embedded handbook content and the registry the
// reader navigates.
//
// Pages live under pages/ as plain markdown, ordered by filename. The
// first level-one heading of each file is its title. The registry is
// read-only after Load; everything downstream (TOC, pager, search,
// export) works against it.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed pages/*.md
var pagesFS embed.FS

// Page is one article of the handbook.
type Page struct {
	Slug  string // filename without extension, e.g. "02-timers"
	Title string // first H1 of the file
	Body  string // raw markdown, including the title heading
	Index int    // position in reading order, 0-based
}

// Registry is the ordered set of handbook pages.
type Registry struct {
	pages  []Page
	bySlug map[string]int
}

// Load reads the embedded pages into a registry, ordered by filename.
func Load() (*Registry, error) {
	return loadFS(pagesFS, "pages")
}

func loadFS(fsys fs.FS, dir string) (*Registry, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read pages directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("no pages found under %s", dir)
	}

	r := &Registry{bySlug: make(map[string]int, len(names))}
	for i, name := range names {
		raw, err := fs.ReadFile(fsys, dir+"/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %s: %w", name, err)
		}

		body := string(raw)
		slug := strings.TrimSuffix(name, ".md")
		page := Page{
			Slug:  slug,
			Title: extractTitle(body, slug),
			Body:  body,
			Index: i,
		}
		r.pages = append(r.pages, page)
		r.bySlug[slug] = i
	}

	return r, nil
}

// Len returns the number of pages.
func (r *Registry) Len() int {
	return len(r.pages)
}

// Pages returns all pages in reading order.
func (r *Registry) Pages() []Page {
	return r.pages
}

// At returns the page at position i.
func (r *Registry) At(i int) (Page, bool) {
	if i < 0 || i >= len(r.pages) {
		return Page{}, false
	}
	return r.pages[i], true
}

// BySlug looks a page up by its slug.
func (r *Registry) BySlug(slug string) (Page, bool) {
	i, ok := r.bySlug[slug]
	if !ok {
		return Page{}, false
	}
	return r.pages[i], true
}

// Next returns the page after the one with the given slug. There is no
// wraparound; the last page has no next.
func (r *Registry) Next(slug string) (Page, bool) {
	i, ok := r.bySlug[slug]
	if !ok {
		return Page{}, false
	}
	return r.At(i + 1)
}

// Prev returns the page before the one with the given slug.
func (r *Registry) Prev(slug string) (Page, bool) {
	i, ok := r.bySlug[slug]
	if !ok {
		return Page{}, false
	}
	return r.At(i - 1)
}

// Titles returns the page titles in reading order, for the TOC.
func (r *Registry) Titles() []string {
	titles := make([]string, len(r.pages))
	for i, p := range r.pages {
		titles[i] = p.Title
	}
	return titles
}

// extractTitle pulls the first H1 out of a page body. Falls back to the
// slug if the page has no heading.
func extractTitle(body, fallback string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return fallback
}
