package mock

import "github.com/fwojciec/pagemeta"

var _ pagemeta.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagemeta.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
