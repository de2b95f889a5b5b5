package mock

import (
	"io"

	"github.com/fwojciec/pageport"
)

var _ pageport.Parser = (*Parser)(nil)

// Parser is a mock implementation of pageport.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (pageport.Document, error)
}

func (p *Parser) Parse(r io.Reader) (pageport.Document, error) {
	return p.ParseFn(r)
}
