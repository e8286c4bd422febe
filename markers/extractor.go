package markers

import (
	"strings"

	"github.com/kpawlak/catcheck"
)

// Ensure Extractor implements catcheck.CatalogExtractor at compile time.
var _ catcheck.CatalogExtractor = (*Extractor)(nil)

// Extractor extracts a snapshot with flat substring scanning. It does
// not assume markers are well-nested: each field is the text between the
// first occurrence of its open marker and the next occurrence of its
// close marker.
type Extractor struct {
	markers Markers
}

// NewExtractor creates an Extractor with the default markers.
func NewExtractor() *Extractor {
	return &Extractor{markers: Default()}
}

// NewExtractorWithMarkers creates an Extractor with custom markers.
func NewExtractorWithMarkers(m Markers) *Extractor {
	return &Extractor{markers: m}
}

// Extract produces a snapshot of the document text in document order.
// A product block with no name marker contributes nothing. A block with
// no code marker yields a product without a code, never an empty-string
// code. Category headings with only whitespace content are discarded.
func (e *Extractor) Extract(html string) (*catcheck.Snapshot, error) {
	return catcheck.NewSnapshot(e.extractCategories(html), e.extractProducts(html)), nil
}

func (e *Extractor) extractCategories(html string) []string {
	var categories []string
	rest := html
	for {
		start := strings.Index(rest, e.markers.CategoryOpen)
		if start < 0 {
			break
		}
		rest = rest[start+len(e.markers.CategoryOpen):]
		end := strings.Index(rest, e.markers.CategoryClose)
		if end < 0 {
			break
		}
		if heading := strings.TrimSpace(rest[:end]); heading != "" {
			categories = append(categories, heading)
		}
		rest = rest[end+len(e.markers.CategoryClose):]
	}
	return categories
}

func (e *Extractor) extractProducts(html string) []catcheck.Product {
	blocks := strings.Split(html, e.markers.Card)
	if len(blocks) < 2 {
		return nil
	}

	var products []catcheck.Product
	for _, block := range blocks[1:] {
		name, ok := enclosed(block, e.markers.NameOpen, e.markers.NameClose)
		if !ok || name == "" {
			// Nameless block: known leniency, skipped silently. Surfaces
			// downstream as a count mismatch, never as an error.
			continue
		}
		product := catcheck.Product{Name: name}
		if code, ok := enclosed(block, e.markers.CodeOpen, e.markers.CodeClose); ok && code != "" {
			product.Code = code
		}
		products = append(products, product)
	}
	return products
}

// enclosed returns the trimmed text between the first occurrence of the
// left marker and the following right marker.
func enclosed(s, left, right string) (string, bool) {
	start := strings.Index(s, left)
	if start < 0 {
		return "", false
	}
	s = s[start+len(left):]
	end := strings.Index(s, right)
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(s[:end]), true
}
