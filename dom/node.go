package dom

import (
	"bytes"
	"strings"

	"github.com/fwojciec/pageport"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Node implements pageport.Node at compile time.
var _ pageport.Node = (*Node)(nil)

// Node is a handle to an *html.Node. The pointer is the node's identity and
// stays valid across mutations: removal only detaches, and text replacement
// rewrites the node in place.
type Node struct {
	node *html.Node
	doc  *Document
}

// Kind returns the node's kind.
func (n *Node) Kind() pageport.NodeKind {
	switch n.node.Type {
	case html.DocumentNode:
		return pageport.DocumentNode
	case html.ElementNode:
		return pageport.ElementNode
	case html.TextNode:
		return pageport.TextNode
	case html.CommentNode:
		return pageport.CommentNode
	}
	return pageport.OtherNode
}

// InnerText returns the concatenated data of all descendant text nodes.
func (n *Node) InnerText() string {
	if n.node.Type == html.TextNode {
		return n.node.Data
	}
	var b strings.Builder
	collectText(n.node, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			continue
		}
		collectText(c, b)
	}
}

// InnerHTML renders the node's children.
func (n *Node) InnerHTML() (string, error) {
	var buf bytes.Buffer
	for c := n.node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// Children returns the node's direct children.
func (n *Node) Children() []pageport.Node {
	var children []pageport.Node
	for c := n.node.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, n.doc.wrap(c))
	}
	return children
}

// QueryFirst returns the first descendant matching expr.
func (n *Node) QueryFirst(expr pageport.PathExpr) (pageport.Node, bool, error) {
	matches, err := n.query(expr)
	if err != nil {
		return nil, false, err
	}
	if len(matches) == 0 {
		return nil, false, nil
	}
	return n.doc.wrap(matches[0]), true, nil
}

// QueryAll returns every descendant matching expr.
func (n *Node) QueryAll(expr pageport.PathExpr) ([]pageport.Node, error) {
	matches, err := n.query(expr)
	if err != nil {
		return nil, err
	}
	nodes := make([]pageport.Node, 0, len(matches))
	for _, m := range matches {
		nodes = append(nodes, n.doc.wrap(m))
	}
	return nodes, nil
}

func (n *Node) query(expr pageport.PathExpr) ([]*html.Node, error) {
	engine, ok := n.doc.engines[expr.Dialect]
	if !ok || engine == nil {
		return nil, pageport.Errorf(pageport.ENOTIMPLEMENTED, "no engine for %s expression %q", expr.Dialect, expr.Expr)
	}
	matches, err := engine.QueryAll(n.node, expr.Expr)
	if err != nil {
		return nil, err
	}

	// XPath can address nodes outside the context node (e.g. "//p" from a
	// subtree), so only strict descendants are kept.
	out := matches[:0]
	for _, m := range matches {
		if isDescendant(m, n.node) {
			out = append(out, m)
		}
	}
	return out, nil
}

func isDescendant(n, ancestor *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// Remove detaches the node from its parent. Detached nodes are no-ops.
func (n *Node) Remove() {
	if n.node.Parent == nil {
		return
	}
	n.node.Parent.RemoveChild(n.node)
}

// ReplaceWithText rewrites the node in place as a text leaf.
func (n *Node) ReplaceWithText(text string) {
	for c := n.node.FirstChild; c != nil; {
		next := c.NextSibling
		n.node.RemoveChild(c)
		c = next
	}
	n.node.Type = html.TextNode
	n.node.DataAtom = atom.Atom(0)
	n.node.Data = text
	n.node.Namespace = ""
	n.node.Attr = nil
}
