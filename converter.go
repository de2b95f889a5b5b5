package pageport

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	// The output is returned exactly as the underlying renderer produced it;
	// callers must not rely on any particular trailing whitespace.
	Convert(html string) (string, error)
}
