package docs

import (
	"regexp"
	"strings"
)

// Match is one search hit inside a page.
type Match struct {
	Slug    string
	Title   string
	Line    int    // 1-based line number in the plain text
	Excerpt string // the matching line, trimmed
}

var (
	linkRe     = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	emphasisRe = regexp.MustCompile(`(\*\*|\*|__|_)`)
)

// PlainText strips markdown syntax from a page body so search operates
// on what the reader actually sees. Code fences are kept (people search
// for identifiers) but the fence markers themselves are dropped.
func PlainText(body string) string {
	var out []string
	inFence := false

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			out = append(out, "")
			continue
		}
		if inFence {
			out = append(out, line)
			continue
		}

		line = strings.TrimLeft(line, "#")
		line = linkRe.ReplaceAllString(line, "$1")
		line = emphasisRe.ReplaceAllString(line, "")
		line = strings.ReplaceAll(line, "`", "")
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

// FindMatches scans a page's plain text for a case-insensitive substring
// query. One match is reported per matching line.
func FindMatches(p Page, plain, query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []Match
	for i, line := range strings.Split(plain, "\n") {
		if !strings.Contains(strings.ToLower(line), query) {
			continue
		}
		matches = append(matches, Match{
			Slug:    p.Slug,
			Title:   p.Title,
			Line:    i + 1,
			Excerpt: strings.TrimSpace(line),
		})
	}
	return matches
}
