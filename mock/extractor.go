package mock

import "github.com/kpawlak/catcheck"

var _ catcheck.CatalogExtractor = (*CatalogExtractor)(nil)

// CatalogExtractor is a mock implementation of catcheck.CatalogExtractor.
type CatalogExtractor struct {
	ExtractFn func(html string) (*catcheck.Snapshot, error)
}

func (e *CatalogExtractor) Extract(html string) (*catcheck.Snapshot, error) {
	return e.ExtractFn(html)
}
