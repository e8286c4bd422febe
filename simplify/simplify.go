// Package simplify strips clinical fragments and their style rules from
// catalog HTML. The transforms must leave every untouched byte in place,
// so they use targeted regex substitution rather than a DOM re-serialize.
package simplify

import (
	"regexp"
	"strings"

	"github.com/kpawlak/catcheck"
)

// Fragment is one removable block of catalog markup.
type Fragment struct {
	// Name identifies the fragment type in logs and configuration.
	Name string

	pattern *regexp.Regexp
}

// NewFragment creates a named fragment with the given pattern.
func NewFragment(name, pattern string) Fragment {
	return Fragment{Name: name, pattern: regexp.MustCompile(pattern)}
}

// DefaultFragments returns the fragment set removed by simplification:
// ICD-10 code rows, clinical-indication boxes, and documentation-
// requirement (medical necessity) boxes.
func DefaultFragments() []Fragment {
	return []Fragment{
		NewFragment("icd10-code-row", `(?s)<div class="code-row">\s*<div class="code-label">ICD-10 Codes</div>.*?</div>\s*</div>`),
		NewFragment("clinical-box", `(?s)<div class="clinical-box">.*?</div>`),
		NewFragment("med-necessity", `(?s)<div class="med-necessity">.*?</div>`),
	}
}

var (
	clinicalBoxStyleRe  = regexp.MustCompile(`(?s)\.clinical-box\s*\{[^}]*\}`)
	medNecessityStyleRe = regexp.MustCompile(`(?s)\.med-necessity\s*\{[^}]*\}`)
	cardPaddingRe       = regexp.MustCompile(`(\.product-card\s*\{[^}]*padding:\s*)\d+px`)
	cardRuleRe          = regexp.MustCompile(`(?s)\.product-card\s*\{[^}]*\}`)
	pageBreakRe         = regexp.MustCompile(`(?s)(\.product-card\s*\{[^}]*?)page-break-inside:\s*[^;]+;`)
	cardOpenRe          = regexp.MustCompile(`(\.product-card\s*\{)`)
	blankRunRe          = regexp.MustCompile(`\n\s*\n\s*\n+`)
)

// Ensure Simplifier implements catcheck.Simplifier at compile time.
var _ catcheck.Simplifier = (*Simplifier)(nil)

// Simplifier applies the fragment and style transforms.
type Simplifier struct {
	fragments []Fragment
}

// NewSimplifier creates a Simplifier with the default fragments.
func NewSimplifier() *Simplifier {
	return &Simplifier{fragments: DefaultFragments()}
}

// NewSimplifierWithFragments creates a Simplifier with custom fragments.
func NewSimplifierWithFragments(fragments []Fragment) *Simplifier {
	return &Simplifier{fragments: fragments}
}

// Simplify removes the configured fragments, drops their style rules,
// and normalizes product-card styling for print output. The style edits
// are best-effort cosmetics; the fragment removal is the contract.
// Category headers, product names, and HCPCS codes are left untouched.
func (s *Simplifier) Simplify(html string) (string, error) {
	for _, f := range s.fragments {
		html = f.pattern.ReplaceAllString(html, "")
	}

	html = clinicalBoxStyleRe.ReplaceAllString(html, "")
	html = medNecessityStyleRe.ReplaceAllString(html, "")

	html = cardPaddingRe.ReplaceAllString(html, "${1}15px")
	html = pageBreakRe.ReplaceAllString(html, "${1}page-break-inside: avoid;")
	if rule := cardRuleRe.FindString(html); rule != "" && !strings.Contains(rule, "page-break-inside") {
		html = cardOpenRe.ReplaceAllString(html, "${1}\n            page-break-inside: avoid;")
	}

	html = blankRunRe.ReplaceAllString(html, "\n\n")

	return html, nil
}
