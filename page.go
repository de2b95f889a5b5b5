package pageport

import (
	"strconv"
	"strings"
)

// FrontMatterDelimiter opens and closes the front-matter block.
const FrontMatterDelimiter = "---"

// LineSeparator joins the lines of a rendered page.
const LineSeparator = "\n"

// Page represents a converted static-site page.
type Page struct {
	Layout string

	// Title is only meaningful when HasTitle is true. An empty title that
	// was found is still written to the front matter.
	Title    string
	HasTitle bool

	Body string // Markdown
}

// String renders the page with its front matter.
// The body is appended unmodified after a blank line.
func (p *Page) String() string {
	lines := make([]string, 0, 6)
	lines = append(lines, FrontMatterDelimiter)
	lines = append(lines, "layout: "+p.Layout)
	if p.HasTitle {
		lines = append(lines, "title: "+strconv.Quote(p.Title))
	}
	lines = append(lines, FrontMatterDelimiter)
	lines = append(lines, "")
	lines = append(lines, p.Body)
	return strings.Join(lines, LineSeparator)
}
