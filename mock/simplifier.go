package mock

import "github.com/kpawlak/catcheck"

var _ catcheck.Simplifier = (*Simplifier)(nil)

// Simplifier is a mock implementation of catcheck.Simplifier.
type Simplifier struct {
	SimplifyFn func(html string) (string, error)
}

func (s *Simplifier) Simplify(html string) (string, error) {
	return s.SimplifyFn(html)
}
