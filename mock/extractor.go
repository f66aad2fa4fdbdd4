package mock

import "github.com/fwojciec/bookqa"

var _ bookqa.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of bookqa.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*bookqa.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*bookqa.ExtractResult, error) {
	return e.ExtractFn(html)
}
