// Package bluemonday strips unsafe markup from HTML before it reaches a
// Markdown converter.
package bluemonday

import (
	"github.com/fwojciec/pageport"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Converter implements pageport.Converter at compile time.
var _ pageport.Converter = (*Converter)(nil)

// Converter sanitizes HTML with a bluemonday policy and passes the result to
// the wrapped converter. Scripts, styles, event handlers and unknown elements
// are dropped; their text content is kept where the policy allows it.
type Converter struct {
	next   pageport.Converter
	policy *bluemonday.Policy
}

// NewConverter wraps next with the user-generated-content policy, which keeps
// the formatting, link, image and table markup Markdown can express.
func NewConverter(next pageport.Converter) *Converter {
	return NewConverterWithPolicy(next, bluemonday.UGCPolicy())
}

// NewConverterWithPolicy wraps next with a custom policy.
func NewConverterWithPolicy(next pageport.Converter, policy *bluemonday.Policy) *Converter {
	return &Converter{next: next, policy: policy}
}

// Convert sanitizes html and delegates to the wrapped converter.
func (c *Converter) Convert(html string) (string, error) {
	return c.next.Convert(c.policy.Sanitize(html))
}
