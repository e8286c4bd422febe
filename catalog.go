package catcheck

import "strings"

// Product represents one catalog line item: a product name and an
// optional HCPCS billing code. Code is empty when the product has no
// billing code (common for basic mobility aids).
type Product struct {
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// NormalizeName returns the comparison identity of a product name:
// whitespace-trimmed and case-folded. Two products are the same product
// iff their normalized names are equal; codes are compared separately,
// never as part of identity.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Stats holds the headline counts for a snapshot.
type Stats struct {
	Categories  int `json:"categories"`
	Products    int `json:"products"`
	UniqueCodes int `json:"uniqueCodes"`
}

// Snapshot is the structural summary of one catalog document at one
// point in time: section headings and products in document order,
// duplicates preserved. It is a value type; construct it once and treat
// it as immutable.
type Snapshot struct {
	Categories []string  `json:"categories"`
	Products   []Product `json:"products"`

	// Stats are derived from Categories/Products at construction. The
	// inventory reader overrides them with the declared statistics block
	// when one is present; declared counts are authoritative even when
	// they disagree with the parsed lists.
	Stats Stats `json:"stats"`
}

// NewSnapshot builds a snapshot with stats derived from the sequences.
func NewSnapshot(categories []string, products []Product) *Snapshot {
	s := &Snapshot{Categories: categories, Products: products}
	s.Stats = Stats{
		Categories:  len(categories),
		Products:    len(products),
		UniqueCodes: len(s.CodeSet()),
	}
	return s
}

// CodeSet returns the set of codes attached to the snapshot's products.
// Products without a code contribute nothing.
func (s *Snapshot) CodeSet() map[string]struct{} {
	codes := make(map[string]struct{})
	for _, p := range s.Products {
		if p.Code != "" {
			codes[p.Code] = struct{}{}
		}
	}
	return codes
}

// CatalogExtractor produces a snapshot from the text of a catalog
// document. Implementations hide the parsing strategy (flat marker
// scanning vs a DOM walk); swapping one for another must not change the
// data model.
type CatalogExtractor interface {
	Extract(html string) (*Snapshot, error)
}

// Simplifier strips clinical fragments and their style rules from a
// catalog document, returning the rewritten text. It must never alter
// category headers, product names, or HCPCS codes; the validate job
// exists to check exactly that.
type Simplifier interface {
	Simplify(html string) (string, error)
}
