package mock

import "github.com/fwojciec/bookqa"

var _ bookqa.ManuscriptParser = (*ManuscriptParser)(nil)

// ManuscriptParser is a mock implementation of bookqa.ManuscriptParser.
type ManuscriptParser struct {
	ParseFn func(markdown string) (*bookqa.Manuscript, error)
}

func (p *ManuscriptParser) Parse(markdown string) (*bookqa.Manuscript, error) {
	return p.ParseFn(markdown)
}
