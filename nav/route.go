// Package nav implements the site's client-side navigation: routes, history,
// page fetching with a fallback, debounced content swaps and fade transitions.
package nav

import "strings"

// PageFromPath maps a location path to a page name.
// "/" and "" are the home page; otherwise leading slashes are stripped.
func PageFromPath(path, home string) string {
	if path == "/" || path == "" {
		return home
	}
	return strings.TrimLeft(path, "/")
}

// PathForPage returns the location path for a page.
func PathForPage(page, home string) string {
	if page == home {
		return "/"
	}
	return "/" + page
}

// History is a stack of visited paths.
type History struct {
	entries []string
}

// Push records a new entry.
func (h *History) Push(path string) {
	h.entries = append(h.entries, path)
}

// Current returns the current path, or "/" when empty.
func (h *History) Current() string {
	if len(h.entries) == 0 {
		return "/"
	}
	return h.entries[len(h.entries)-1]
}

// Back drops the current entry and returns the one before it.
// Returns false when there is nothing to go back to.
func (h *History) Back() (string, bool) {
	if len(h.entries) < 2 {
		return "", false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return h.Current(), true
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}
