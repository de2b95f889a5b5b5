// Package goquery evaluates CSS path expressions and detects site generators
// using github.com/PuerkitoBio/goquery.
package goquery

import (
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/pageport"
	"github.com/fwojciec/pageport/dom"
	"golang.org/x/net/html"
)

// Ensure Engine implements dom.Engine at compile time.
var _ dom.Engine = (*Engine)(nil)

// Engine evaluates CSS selectors. Compiled selectors are cached, and the
// engine is safe for concurrent use.
type Engine struct {
	cache sync.Map // string -> goquery.Matcher
}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// QueryAll returns the descendants of root matching selector.
func (e *Engine) QueryAll(root *html.Node, selector string) ([]*html.Node, error) {
	m, err := e.compile(selector)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromNode(root).FindMatcher(m).Nodes, nil
}

// goquery.Find silently matches nothing on a bad selector, so selectors are
// compiled with cascadia to report the error.
func (e *Engine) compile(selector string) (goquery.Matcher, error) {
	if m, ok := e.cache.Load(selector); ok {
		return m.(goquery.Matcher), nil
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, pageport.Errorf(pageport.EINVALID, "invalid CSS selector %q: %v", selector, err)
	}
	e.cache.Store(selector, sel)
	return sel, nil
}
