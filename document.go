package pageport

import "io"

// NodeKind classifies a node in a parsed document.
type NodeKind int

// Node kinds.
const (
	OtherNode NodeKind = iota
	DocumentNode
	ElementNode
	TextNode
	CommentNode
)

// String returns a lowercase name for the kind.
func (k NodeKind) String() string {
	switch k {
	case DocumentNode:
		return "document"
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	}
	return "other"
}

// Node is a handle to a node of a parsed document.
//
// Queries search the node's descendants only, never the node itself, and
// return matches in document order. Mutations are applied in place and are
// visible to every later query on the same document.
type Node interface {
	// Kind returns the node's kind.
	Kind() NodeKind

	// InnerText returns the concatenated text of all descendant text nodes.
	InnerText() string

	// InnerHTML returns the serialized markup of the node's children.
	InnerHTML() (string, error)

	// Children returns the node's current direct children.
	Children() []Node

	// QueryFirst returns the first descendant matching expr.
	// The boolean is false when nothing matches; that is not an error.
	// Malformed expressions return an EINVALID error.
	QueryFirst(expr PathExpr) (Node, bool, error)

	// QueryAll returns every descendant matching expr.
	QueryAll(expr PathExpr) ([]Node, error)

	// Remove detaches the node and its subtree from the document.
	Remove()

	// ReplaceWithText turns the node into a text node holding text.
	ReplaceWithText(text string)
}

// Document is a parsed HTML document.
// A Document is not safe for concurrent use; sanitization mutates it.
type Document interface {
	// Root returns the document's root node.
	Root() Node

	// Clone returns an independent deep copy of the document.
	Clone() Document
}

// Parser parses raw HTML into a Document.
type Parser interface {
	// Parse reads HTML from r. Implementations tolerate malformed markup.
	Parse(r io.Reader) (Document, error)
}
