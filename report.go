package catcheck

import (
	"fmt"
	"io"
	"strings"
)

// maxListed caps how many missing/extra entries a report block renders
// before truncating with a "... and N more" line.
const maxListed = 10

// FileResult is the per-catalog outcome of a validation job. Err is set
// when the catalog could not be read, extracted, or matched to an
// inventory section; such files are reported as failures, never dropped.
type FileResult struct {
	File       string
	Comparison *Comparison
	Err        error

	// ContentHash identifies the exact catalog bytes that were
	// validated; recorded in run history, not rendered in the report.
	ContentHash string
}

// Passed reports whether the file validated cleanly.
func (r *FileResult) Passed() bool {
	return r.Err == nil && r.Comparison != nil && r.Comparison.AllMatch
}

// AllPassed reports whether every file validated cleanly.
func AllPassed(results []FileResult) bool {
	for i := range results {
		if !results[i].Passed() {
			return false
		}
	}
	return true
}

// WriteReport renders validation results as a deterministic plain-text
// report: an overall summary, one detail block per catalog in input
// order, and a concluding verdict. Rendering the same results twice
// yields byte-identical output.
func WriteReport(w io.Writer, results []FileResult) error {
	var b strings.Builder

	writeHeading(&b, "INVENTORY VALIDATION REPORT")
	b.WriteString("\nPURPOSE:\n")
	b.WriteString("  Verify that simplification removed only ICD-10 codes, clinical\n")
	b.WriteString("  indications, and documentation requirements while preserving all\n")
	b.WriteString("  categories, products, and HCPCS codes.\n\n")

	writeSummary(&b, results)

	writeHeading(&b, "DETAILED FILE-BY-FILE COMPARISON")
	b.WriteString("\n")
	for i := range results {
		writeDetail(&b, &results[i])
	}

	writeConclusion(&b, AllPassed(results))

	_, err := io.WriteString(w, b.String())
	return err
}

var (
	heavyRule = strings.Repeat("=", 80)
	lightRule = strings.Repeat("-", 80)
)

func writeHeading(b *strings.Builder, title string) {
	b.WriteString(heavyRule + "\n")
	b.WriteString(title + "\n")
	b.WriteString(heavyRule + "\n")
}

func writeSummary(b *strings.Builder, results []FileResult) {
	var beforeCategories, afterCategories, beforeProducts, afterProducts int
	var errored int
	for i := range results {
		cmp := results[i].Comparison
		if cmp == nil {
			errored++
			continue
		}
		beforeCategories += cmp.Before.Categories
		afterCategories += cmp.After.Categories
		beforeProducts += cmp.Before.Products
		afterProducts += cmp.After.Products
	}

	writeHeading(b, "OVERALL SUMMARY")
	b.WriteString("\n")
	fmt.Fprintf(b, "  Files validated:            %d\n", len(results))
	if errored > 0 {
		fmt.Fprintf(b, "  Files failed to process:    %d\n", errored)
	}
	fmt.Fprintf(b, "  Total categories (before):  %d\n", beforeCategories)
	fmt.Fprintf(b, "  Total categories (after):   %d\n", afterCategories)
	fmt.Fprintf(b, "  Total products (before):    %d\n", beforeProducts)
	fmt.Fprintf(b, "  Total products (after):     %d\n", afterProducts)
	b.WriteString("\n")
	fmt.Fprintf(b, "  Overall status: %s\n\n", passFail(AllPassed(results)))
}

func writeDetail(b *strings.Builder, r *FileResult) {
	b.WriteString(lightRule + "\n")
	b.WriteString("FILE: " + r.File + "\n")
	b.WriteString(lightRule + "\n\n")

	if r.Err != nil {
		fmt.Fprintf(b, "  ERROR: %s\n\n", ErrorMessage(r.Err))
		fmt.Fprintf(b, "  File status: FAIL\n\n")
		return
	}

	cmp := r.Comparison
	b.WriteString("  COUNTS COMPARISON:\n")
	fmt.Fprintf(b, "    %-30s %-10s %-10s %s\n", "Metric", "Before", "After", "Status")
	fmt.Fprintf(b, "    %s %s %s %s\n",
		strings.Repeat("-", 30), strings.Repeat("-", 10), strings.Repeat("-", 10), strings.Repeat("-", 10))
	fmt.Fprintf(b, "    %-30s %-10d %-10d %s\n",
		"Categories", cmp.Before.Categories, cmp.After.Categories, matchMismatch(cmp.CategoriesMatch))
	fmt.Fprintf(b, "    %-30s %-10d %-10d %s\n",
		"Products", cmp.Before.Products, cmp.After.Products, matchMismatch(cmp.ProductsMatch))
	b.WriteString("\n")

	issues := false
	issues = writeEntryList(b, "MISSING HCPCS CODES", cmp.MissingCodes) || issues
	issues = writeEntryList(b, "EXTRA HCPCS CODES", cmp.ExtraCodes) || issues
	issues = writeEntryList(b, "MISSING PRODUCTS", cmp.MissingProducts) || issues
	issues = writeEntryList(b, "EXTRA PRODUCTS", cmp.ExtraProducts) || issues

	if !issues {
		b.WriteString("  NO ISSUES FOUND\n\n")
	}

	fmt.Fprintf(b, "  File status: %s\n\n", passFail(cmp.AllMatch))
}

// writeEntryList renders a labeled entry list capped at maxListed
// entries. It returns true when the list was non-empty.
func writeEntryList(b *strings.Builder, label string, entries []string) bool {
	if len(entries) == 0 {
		return false
	}
	fmt.Fprintf(b, "  %s (%d):\n", label, len(entries))
	for i, entry := range entries {
		if i == maxListed {
			fmt.Fprintf(b, "    ... and %d more\n", len(entries)-maxListed)
			break
		}
		b.WriteString("    - " + entry + "\n")
	}
	b.WriteString("\n")
	return true
}

func writeConclusion(b *strings.Builder, pass bool) {
	writeHeading(b, "VALIDATION CONCLUSION")
	b.WriteString("\n")
	if pass {
		b.WriteString("  VALIDATION PASSED\n\n")
		b.WriteString("  Only ICD-10 codes, clinical indications, and documentation\n")
		b.WriteString("  requirements were removed. All categories, products, and HCPCS\n")
		b.WriteString("  codes were preserved.\n")
	} else {
		b.WriteString("  VALIDATION FAILED\n\n")
		b.WriteString("  Issues were found during validation. Review the detailed\n")
		b.WriteString("  comparison above.\n")
	}
	b.WriteString("\n" + heavyRule + "\n")
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

func matchMismatch(ok bool) string {
	if ok {
		return "MATCH"
	}
	return "MISMATCH"
}
