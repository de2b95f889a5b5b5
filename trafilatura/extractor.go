// Package trafilatura locates the main content of a page with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/pageport"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pageport.Extractor at compile time.
var _ pageport.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura.
type Extractor struct {
	fallback bool
}

// NewExtractor creates a new Extractor. Trafilatura's own fallback
// extractors (readability and dom-distiller) are enabled.
func NewExtractor() *Extractor {
	return &Extractor{fallback: true}
}

// Extract returns the main content of rawHTML.
func (e *Extractor) Extract(rawHTML string) (*pageport.Extraction, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pageport.Errorf(pageport.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: e.fallback,
	})
	if err != nil {
		return nil, pageport.Errorf(pageport.ENOTFOUND, "no main content found: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		// The content node is a wrapper element; only its children are content.
		var buf bytes.Buffer
		for c := result.ContentNode.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return nil, pageport.Errorf(pageport.EINTERNAL, "render content: %v", err)
			}
		}
		contentHTML = buf.String()
	}

	return &pageport.Extraction{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}
