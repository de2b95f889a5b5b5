// Package readability locates the main content of a page with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/pageport"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pageport.Extractor at compile time.
var _ pageport.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content of rawHTML.
func (e *Extractor) Extract(rawHTML string) (*pageport.Extraction, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pageport.Errorf(pageport.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, pageport.Errorf(pageport.ENOTFOUND, "no main content found: %v", err)
	}

	return &pageport.Extraction{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
