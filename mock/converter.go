package mock

import "github.com/fwojciec/pageport"

var _ pageport.Converter = (*Converter)(nil)

// Converter is a mock implementation of pageport.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
