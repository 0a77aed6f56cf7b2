package nav

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase capitalizes the first letter of each word and lowercases the rest.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// LinkID returns the element id of a page's nav link.
func LinkID(page string) string {
	return page + "-link"
}

// BaseName returns the part of a link id before the first '-'.
func BaseName(id string) string {
	base, _, _ := strings.Cut(id, "-")
	return base
}

// Link is one entry in the nav bar.
type Link struct {
	ID     string
	Page   string
	Label  string
	Active bool
	Fade   Fade
}

// newLink creates a link for page showing its title-cased name.
func newLink(page string, fadeRate float64) Link {
	id := LinkID(page)
	return Link{
		ID:    id,
		Page:  page,
		Label: TitleCase(BaseName(id)),
		Fade:  Fade{Opacity: 1, Target: 1, Rate: fadeRate},
	}
}
