// Package inventory reads the plain-text "before" inventory report into
// per-catalog snapshots. The report is a fixed tabular format: one
// section per catalog headed by a delimiter line and a FILE: token,
// followed by a statistics block, a numbered categories list, a unique
// codes list, and a numbered product list.
package inventory

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kpawlak/catcheck"
)

var (
	sectionRe  = regexp.MustCompile(`(?m)^={80,}\nFILE: (\S+)\n={80,}$`)
	statsRe    = regexp.MustCompile(`STATISTICS:\s+Total categories: (\d+)\s+Total products: (\d+)\s+Unique HCPCS codes: (\d+)`)
	catsRe     = regexp.MustCompile(`(?s)CATEGORIES:(.*?)(?:ALL HCPCS CODES|$)`)
	codesRe    = regexp.MustCompile(`(?s)ALL HCPCS CODES \(sorted, unique\):(.*?)(?:COMPLETE PRODUCT LIST|$)`)
	prodsRe    = regexp.MustCompile(`(?s)COMPLETE PRODUCT LIST:(.*?)(?:\n\n\n|$)`)
	numberedRe = regexp.MustCompile(`^\s*\d+\.\s+(.+)$`)
	productRe  = regexp.MustCompile(`^\s*\d+\.\s+\[([^\]]+)\]\s+(.+)$`)
)

// Ensure Reader implements catcheck.InventoryReader at compile time.
var _ catcheck.InventoryReader = (*Reader)(nil)

// Reader parses the inventory report format.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadInventory splits the report into per-catalog sections and parses
// each one independently. A catalog without a section is simply absent
// from the result; Inventory.Get surfaces that as ENOTFOUND downstream.
func (r *Reader) ReadInventory(text string) (catcheck.Inventory, error) {
	inv := catcheck.Inventory{}

	matches := sectionRe.FindAllStringSubmatchIndex(text, -1)
	for i, m := range matches {
		name := text[m[2]:m[3]]
		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		inv[name] = parseSection(text[start:end])
	}

	return inv, nil
}

func parseSection(section string) *catcheck.Snapshot {
	var categories []string
	if m := catsRe.FindStringSubmatch(section); m != nil {
		for _, line := range strings.Split(m[1], "\n") {
			if cm := numberedRe.FindStringSubmatch(line); cm != nil {
				categories = append(categories, strings.TrimSpace(cm[1]))
			}
		}
	}

	var codes []string
	if m := codesRe.FindStringSubmatch(section); m != nil {
		for _, line := range strings.Split(m[1], "\n") {
			code := strings.TrimSpace(line)
			if code == "" || strings.HasPrefix(code, "=") {
				continue
			}
			codes = append(codes, code)
		}
	}

	var products []catcheck.Product
	if m := prodsRe.FindStringSubmatch(section); m != nil {
		for _, line := range strings.Split(m[1], "\n") {
			if pm := productRe.FindStringSubmatch(line); pm != nil {
				products = append(products, catcheck.Product{
					Code: strings.TrimSpace(pm[1]),
					Name: strings.TrimSpace(pm[2]),
				})
			}
		}
	}

	snap := catcheck.NewSnapshot(categories, products)

	// The declared statistics block is authoritative when present, even
	// when it disagrees with the parsed lists. Without one, fall back to
	// exact counts of the lists themselves.
	if m := statsRe.FindStringSubmatch(section); m != nil {
		snap.Stats = catcheck.Stats{
			Categories:  atoi(m[1]),
			Products:    atoi(m[2]),
			UniqueCodes: atoi(m[3]),
		}
	} else {
		snap.Stats.UniqueCodes = uniqueCount(codes)
	}

	return snap
}

// atoi converts a digits-only regex capture; the pattern guarantees a
// valid integer.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func uniqueCount(codes []string) int {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return len(set)
}
