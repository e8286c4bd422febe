// Package catcheck validates simplified DME catalog HTML files against a
// plain-text inventory snapshot taken before simplification. It strips
// clinical fragments (ICD-10 code rows, clinical-indication boxes,
// documentation-requirement boxes) from catalog files, extracts a
// structural snapshot (categories, products, HCPCS codes) from the
// result, and diffs it against the before-inventory to prove nothing
// else was lost.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or concern
// (e.g., goquery/, sqlite/, markers/).
package catcheck
