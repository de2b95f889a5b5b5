package pageport

import "html"

// Extraction is the main content of a page as located by a boilerplate
// extractor.
type Extraction struct {
	// Title is the page title taken from metadata.
	Title string

	// ContentHTML is the main content with navigation, sidebars and footers
	// stripped. It is an HTML fragment.
	ContentHTML string
}

// Extractor locates the main content of a page heuristically. It is used
// when no content path expression is known for a page.
type Extractor interface {
	Extract(html string) (*Extraction, error)
}

// ExtractedContentPath is the content expression matching the body of a
// document built by Extraction.HTML.
const ExtractedContentPath = "body"

// HTML returns a standalone document whose title is the extracted title and
// whose body is the extracted content.
func (e *Extraction) HTML() string {
	return "<html><head><title>" + html.EscapeString(e.Title) + "</title></head><body>" +
		e.ContentHTML + "</body></html>"
}
