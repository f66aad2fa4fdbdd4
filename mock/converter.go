package mock

import "github.com/fwojciec/bookqa"

var _ bookqa.Converter = (*Converter)(nil)

// Converter is a mock implementation of bookqa.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
