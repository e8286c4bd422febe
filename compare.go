package catcheck

import (
	"sort"
	"strings"
)

// Comparison is the outcome of diffing the before and after snapshots of
// one catalog. It is computed once by Compare and never mutated.
//
// Categories are compared by count only; category names are deliberately
// not diffed. This is a known leniency inherited from the validation
// contract, kept as-is rather than silently tightened.
type Comparison struct {
	Before Stats `json:"before"`
	After  Stats `json:"after"`

	CategoriesMatch bool `json:"categoriesMatch"`
	ProductsMatch   bool `json:"productsMatch"`

	// Codes present on one side's products but not the other's, sorted.
	MissingCodes []string `json:"missingCodes"`
	ExtraCodes   []string `json:"extraCodes"`

	// Product names present on one side but not the other under the
	// normalized-name identity, rendered with original casing and sorted
	// by normalized name.
	MissingProducts []string `json:"missingProducts"`
	ExtraProducts   []string `json:"extraProducts"`

	AllMatch bool `json:"allMatch"`
}

// Compare diffs a before/after snapshot pair. It is a pure function of
// its inputs and never fails given two valid snapshots.
//
// Products are de-duplicated by normalized name when building the
// comparison sets, so two catalog rows sharing a name collapse into one
// entry even when their codes differ; the codes still participate in the
// code-set diff.
func Compare(before, after *Snapshot) *Comparison {
	cmp := &Comparison{
		Before:          before.Stats,
		After:           after.Stats,
		CategoriesMatch: before.Stats.Categories == after.Stats.Categories,
		ProductsMatch:   before.Stats.Products == after.Stats.Products,
	}

	beforeCodes := before.CodeSet()
	afterCodes := after.CodeSet()
	cmp.MissingCodes = diffCodes(beforeCodes, afterCodes)
	cmp.ExtraCodes = diffCodes(afterCodes, beforeCodes)

	beforeNames := nameIndex(before.Products)
	afterNames := nameIndex(after.Products)
	cmp.MissingProducts = diffNames(beforeNames, afterNames)
	cmp.ExtraProducts = diffNames(afterNames, beforeNames)

	cmp.AllMatch = cmp.CategoriesMatch && cmp.ProductsMatch &&
		len(cmp.MissingCodes) == 0 && len(cmp.ExtraCodes) == 0 &&
		len(cmp.MissingProducts) == 0 && len(cmp.ExtraProducts) == 0

	return cmp
}

// diffCodes returns the codes in a but not in b, sorted.
func diffCodes(a, b map[string]struct{}) []string {
	var diff []string
	for code := range a {
		if _, ok := b[code]; !ok {
			diff = append(diff, code)
		}
	}
	sort.Strings(diff)
	return diff
}

// nameIndex maps normalized product names to display names, keeping the
// first occurrence when duplicates collapse.
func nameIndex(products []Product) map[string]string {
	idx := make(map[string]string, len(products))
	for _, p := range products {
		key := NormalizeName(p.Name)
		if _, ok := idx[key]; !ok {
			idx[key] = strings.TrimSpace(p.Name)
		}
	}
	return idx
}

// diffNames returns display names present in a but not in b, sorted by
// normalized name.
func diffNames(a, b map[string]string) []string {
	var keys []string
	for key := range a {
		if _, ok := b[key]; !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, a[key])
	}
	if len(names) == 0 {
		return nil
	}
	return names
}
