// Package importer turns a region of a parsed HTML document into Markdown or
// into a front-matter page.
//
// Each call is a single pass: locate the content node, sanitize it in place,
// serialize it, convert it. An Importer holds no per-document state and may
// be shared by goroutines working on different documents. A document must
// not be shared, because sanitizing mutates it; use Document.Clone to run
// several configurations over one parsed page.
//
// Removal expressions are applied before inline expressions. A removal that
// matches an ancestor of an inline target drops that target too, so its text
// never reaches the output.
//
// Expressions must select nodes. XPath expressions selecting attributes
// (such as "//@class") fail with EINVALID rather than matching nothing.
package importer

import "github.com/fwojciec/pageport"

// Importer converts documents according to a SelectorConfig.
type Importer struct {
	Config    *pageport.SelectorConfig
	Converter pageport.Converter
}

// New returns an Importer for cfg that converts HTML with conv.
func New(cfg *pageport.SelectorConfig, conv pageport.Converter) *Importer {
	return &Importer{Config: cfg, Converter: conv}
}
