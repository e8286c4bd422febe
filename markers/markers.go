// Package markers extracts catalog snapshots by scanning for literal
// marker substrings, without building a parse tree. Flat scanning is
// robust enough for the fixed, generator-produced markup and tolerates
// extraneous nested tags as long as the literal markers appear first.
package markers

// Markers names the literal substrings that delimit the structures
// extracted from a catalog document. The exact literals are a contract
// with the upstream catalog generator; keep them here, not inline.
type Markers struct {
	// CategoryOpen and CategoryClose wrap a category heading.
	CategoryOpen  string
	CategoryClose string

	// Card starts a product block; the block runs to the next Card.
	Card string

	// NameOpen and NameClose wrap the product name inside a block.
	NameOpen  string
	NameClose string

	// CodeOpen and CodeClose wrap the optional HCPCS code inside a block.
	CodeOpen  string
	CodeClose string
}

// Default returns the marker set emitted by the DME catalog generator.
func Default() Markers {
	return Markers{
		CategoryOpen:  `<div class="category-header">`,
		CategoryClose: `</div>`,
		Card:          `<div class="product-card">`,
		NameOpen:      `<div class="product-name">`,
		NameClose:     `</div>`,
		CodeOpen:      `<span class="hcpcs-code">`,
		CodeClose:     `</span>`,
	}
}
