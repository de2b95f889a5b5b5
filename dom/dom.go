// Package dom implements pageport.Document on top of golang.org/x/net/html.
//
// Path expressions are evaluated by pluggable engines, one per dialect.
package dom

import (
	"io"
	"strings"

	"github.com/fwojciec/pageport"
	"golang.org/x/net/html"
)

// Engine evaluates path expressions of a single dialect.
type Engine interface {
	// QueryAll returns the nodes under root matching expr, in document order.
	// Malformed expressions return an EINVALID error.
	QueryAll(root *html.Node, expr string) ([]*html.Node, error)
}

// Ensure Parser implements pageport.Parser at compile time.
var _ pageport.Parser = (*Parser)(nil)

// Parser parses HTML into documents queried by the configured engines.
type Parser struct {
	engines map[pageport.Dialect]Engine
}

// NewParser creates a Parser using css and xpath to evaluate expressions.
func NewParser(css, xpath Engine) *Parser {
	return &Parser{
		engines: map[pageport.Dialect]Engine{
			pageport.DialectCSS:   css,
			pageport.DialectXPath: xpath,
		},
	}
}

// Parse reads HTML from r.
func (p *Parser) Parse(r io.Reader) (pageport.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root, engines: p.engines}, nil
}

// ParseString is a convenience wrapper around Parse.
func (p *Parser) ParseString(s string) (pageport.Document, error) {
	return p.Parse(strings.NewReader(s))
}

// Ensure Document implements pageport.Document at compile time.
var _ pageport.Document = (*Document)(nil)

// Document is a parsed HTML tree.
type Document struct {
	root    *html.Node
	engines map[pageport.Dialect]Engine
}

// Root returns the document node.
func (d *Document) Root() pageport.Node {
	return d.wrap(d.root)
}

// Clone returns a deep copy of the document sharing the same engines.
func (d *Document) Clone() pageport.Document {
	return &Document{root: cloneTree(d.root), engines: d.engines}
}

func (d *Document) wrap(n *html.Node) *Node {
	return &Node{node: n, doc: d}
}

func cloneTree(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneTree(child))
	}
	return c
}
