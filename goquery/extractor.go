// Package goquery provides a DOM-based catalog extractor built on
// PuerkitoBio/goquery. It is the drop-in alternative to the markers
// extractor for documents where flat marker scanning is not trusted.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kpawlak/catcheck"
)

// Selectors names the CSS selectors that mark catalog structures.
type Selectors struct {
	CategoryHeader string
	ProductCard    string
	ProductName    string
	Code           string
}

// DefaultSelectors returns the selector set matching the DME catalog
// generator's class contract.
func DefaultSelectors() Selectors {
	return Selectors{
		CategoryHeader: "div.category-header",
		ProductCard:    "div.product-card",
		ProductName:    "div.product-name",
		Code:           "span.hcpcs-code",
	}
}

// Ensure Extractor implements catcheck.CatalogExtractor at compile time.
var _ catcheck.CatalogExtractor = (*Extractor)(nil)

// Extractor extracts a snapshot by walking the parsed document tree.
type Extractor struct {
	selectors Selectors
}

// NewExtractor creates an Extractor with the default selectors.
func NewExtractor() *Extractor {
	return &Extractor{selectors: DefaultSelectors()}
}

// NewExtractorWithSelectors creates an Extractor with custom selectors.
func NewExtractorWithSelectors(s Selectors) *Extractor {
	return &Extractor{selectors: s}
}

// Extract parses the document and visits category headers and product
// cards in document order. The leniency rules match the markers
// extractor: nameless cards are skipped, absent codes stay absent, and
// whitespace-only headings are discarded.
func (e *Extractor) Extract(html string) (*catcheck.Snapshot, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, catcheck.Errorf(catcheck.EINVALID, "failed to parse HTML: %v", err)
	}

	var categories []string
	doc.Find(e.selectors.CategoryHeader).Each(func(_ int, sel *goquery.Selection) {
		if heading := strings.TrimSpace(sel.Text()); heading != "" {
			categories = append(categories, heading)
		}
	})

	var products []catcheck.Product
	doc.Find(e.selectors.ProductCard).Each(func(_ int, card *goquery.Selection) {
		name := strings.TrimSpace(card.Find(e.selectors.ProductName).First().Text())
		if name == "" {
			return
		}
		product := catcheck.Product{Name: name}
		if code := strings.TrimSpace(card.Find(e.selectors.Code).First().Text()); code != "" {
			product.Code = code
		}
		products = append(products, product)
	})

	return catcheck.NewSnapshot(categories, products), nil
}
