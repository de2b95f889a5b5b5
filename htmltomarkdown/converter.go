// Package htmltomarkdown converts HTML fragments to Markdown using
// github.com/JohannesKaufmann/html-to-markdown/v2.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pageport"
)

// Ensure Converter implements pageport.Converter at compile time.
var _ pageport.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter with the CommonMark and table plugins.
func NewConverter() *Converter {
	return NewConverterWithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(),
	)
}

// NewConverterWithPlugins creates a Converter with exactly the given plugins.
// Plugin setup errors surface from the first Convert call.
func NewConverterWithPlugins(plugins ...converter.Plugin) *Converter {
	return &Converter{conv: converter.NewConverter(converter.WithPlugins(plugins...))}
}

// Convert transforms an HTML fragment into Markdown.
// Blank input converts to an empty document rather than an error, since an
// empty content region is a valid page.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	return c.conv.ConvertString(html)
}
