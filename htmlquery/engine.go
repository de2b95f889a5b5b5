// Package htmlquery evaluates XPath path expressions using
// github.com/antchfx/htmlquery.
package htmlquery

import (
	"sync"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"github.com/fwojciec/pageport"
	"github.com/fwojciec/pageport/dom"
	"golang.org/x/net/html"
)

// Ensure Engine implements dom.Engine at compile time.
var _ dom.Engine = (*Engine)(nil)

// Engine evaluates XPath expressions. Compiled expressions are cached, and
// the engine is safe for concurrent use.
type Engine struct {
	cache sync.Map // string -> *xpath.Expr
}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// QueryAll returns the nodes matching expr with root as the context node.
// Expressions selecting attributes return EINVALID: htmlquery represents
// them as detached copies, which cannot be removed or replaced.
func (e *Engine) QueryAll(root *html.Node, expr string) ([]*html.Node, error) {
	compiled, err := e.compile(expr)
	if err != nil {
		return nil, err
	}

	var nodes []*html.Node
	iter := compiled.Select(htmlquery.CreateXPathNavigator(root))
	for iter.MoveNext() {
		nav, ok := iter.Current().(*htmlquery.NodeNavigator)
		if !ok {
			continue
		}
		if nav.NodeType() == xpath.AttributeNode {
			return nil, pageport.Errorf(pageport.EINVALID, "XPath expression %q selects attributes, not nodes", expr)
		}
		nodes = append(nodes, nav.Current())
	}
	return nodes, nil
}

func (e *Engine) compile(expr string) (*xpath.Expr, error) {
	if v, ok := e.cache.Load(expr); ok {
		return v.(*xpath.Expr), nil
	}
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, pageport.Errorf(pageport.EINVALID, "invalid XPath expression %q: %v", expr, err)
	}
	e.cache.Store(expr, compiled)
	return compiled, nil
}
