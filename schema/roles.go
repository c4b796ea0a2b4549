package schema

import "strings"

// ============================================================================
// COLUMN ROLE RESOLUTION — Keyword-Based Semantic Classification
// ============================================================================
// Matches dataset column names against ordered candidate-keyword lists
// to identify semantic roles (sales amount, product, category, date,
// quantity, price). Case-insensitive substring match only — no fuzzy
// matching, no synonyms beyond the fixed candidate lists.
//
// Resolution is order-sensitive: candidates are scanned in priority
// order, and within one candidate, columns in their original order.
// All columns are checked against candidate 1 before candidate 2.
// ============================================================================

// Candidate keyword lists per role, in priority order.
var (
	salesCandidates    = []string{"sales", "amount", "total", "revenue"}
	productCandidates  = []string{"product", "item", "sku", "name"}
	categoryCandidates = []string{"category", "cat", "department"}
	dateCandidates     = []string{"date", "order_date", "timestamp"}
	quantityCandidates = []string{"quantity", "qty"}
	priceCandidates    = []string{"price", "unit_price"}
)

// Roles maps each logical role to an actual column name.
// An empty string means the role is absent from the dataset.
// Resolved once per run, immutable afterward.
type Roles struct {
	Sales    string
	Product  string
	Category string
	Date     string
	Quantity string
	Price    string
}

// Resolve classifies the given header names into semantic roles.
// Resolution is deterministic: the same header always yields the same Roles.
func Resolve(headers []string) Roles {
	return Roles{
		Sales:    FindColumn(headers, salesCandidates),
		Product:  FindColumn(headers, productCandidates),
		Category: FindColumn(headers, categoryCandidates),
		Date:     FindColumn(headers, dateCandidates),
		Quantity: FindColumn(headers, quantityCandidates),
		Price:    FindColumn(headers, priceCandidates),
	}
}

// FindColumn returns the first column whose lowercased name contains a
// candidate substring, scanning candidates in priority order and columns
// in original order within each candidate. Returns "" if none match.
func FindColumn(headers []string, candidates []string) string {
	for _, cand := range candidates {
		for _, h := range headers {
			if strings.Contains(strings.ToLower(h), cand) {
				return h
			}
		}
	}
	return ""
}

// GroupColumn returns the column used to bucket rows: the category
// column if present, else the product column. An empty result means no
// grouping is available and the grouped summary is skipped.
func (r Roles) GroupColumn() string {
	if r.Category != "" {
		return r.Category
	}
	return r.Product
}

// HasDirectSales reports whether a sales-like column was resolved.
func (r Roles) HasDirectSales() bool { return r.Sales != "" }

// CanDeriveSales reports whether sales can be computed as quantity × price.
func (r Roles) CanDeriveSales() bool { return r.Quantity != "" && r.Price != "" }

// SalesLabel returns a human-readable label for the sales measure:
// the resolved sales column name, or the derivation operands when the
// measure is computed.
func (r Roles) SalesLabel() string {
	if r.Sales != "" {
		return DisplayName(r.Sales)
	}
	if r.CanDeriveSales() {
		return DisplayName(r.Quantity) + " × " + DisplayName(r.Price)
	}
	return "Sales"
}

// DisplayName cleans a column header for human display.
// "unit_price" → "Unit Price", "Category" → "Category".
func DisplayName(s string) string {
	if strings.Contains(s, " ") {
		return strings.TrimSpace(s)
	}

	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")

	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
