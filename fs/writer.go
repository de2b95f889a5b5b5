// Package fs writes converted pages to the local filesystem.
package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pageport"
)

// MarkdownExt is the extension given to converted pages.
const MarkdownExt = ".md"

// OutputPath derives a relative Markdown path for an input, which may be a
// URL or a local file path.
// Example: https://example.com/docs/api/users → docs/api/users.md
// Example: site/about.html → about.md
// The result always stays inside the directory it is joined to.
func OutputPath(input string) (string, error) {
	var rel string
	switch {
	case isURL(input):
		var err error
		if rel, err = urlToPath(input); err != nil {
			return "", err
		}
	case input == "" || input == "-":
		return "", pageport.Errorf(pageport.EINVALID, "cannot derive output path from %q", input)
	default:
		base := filepath.Base(input)
		rel = strings.TrimSuffix(base, filepath.Ext(base)) + MarkdownExt
	}

	rel = filepath.FromSlash(rel)
	if !filepath.IsLocal(rel) {
		return "", pageport.Errorf(pageport.EINVALID, "output path %q for %q escapes the output directory", rel, input)
	}
	return rel, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func urlToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", pageport.Errorf(pageport.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	// Cleaning against the root resolves ".." segments without climbing
	// above it.
	dir := strings.HasSuffix(u.Path, "/")
	p := strings.TrimPrefix(path.Clean("/"+u.Path), "/")
	switch {
	case p == "":
		return "index" + MarkdownExt, nil
	case dir:
		return p + "/index" + MarkdownExt, nil
	}

	// "page.html" and "page" both become "page.md"
	if ext := path.Ext(p); ext == ".html" || ext == ".htm" {
		p = strings.TrimSuffix(p, ext)
	}
	return p + MarkdownExt, nil
}

// Writer writes content to a single file. The content is written to a
// temporary sibling first and renamed into place, so readers never observe
// a partially written page.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

func (w *Writer) tempPath() string {
	return w.path + ".tmp"
}

// Write replaces the destination file with content.
func (w *Writer) Write(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}

	if err := os.WriteFile(w.tempPath(), []byte(content), 0644); err != nil {
		_ = os.Remove(w.tempPath())
		return err
	}

	if err := os.Rename(w.tempPath(), w.path); err != nil {
		_ = os.Remove(w.tempPath())
		return err
	}

	return nil
}
