package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ============================================================================
// DATASET — CSV Loading and Value Coercion
// ============================================================================
// A Dataset is an ordered sequence of rows loaded fully into memory.
// Column names and count are not fixed; values stay raw strings and are
// coerced on demand (unparseable → missing, never an error).
// ============================================================================

// ErrEmpty is returned when the CSV has no data rows (or no header at all).
var ErrEmpty = errors.New("dataset is empty")

// Dataset holds a parsed CSV: a header row plus raw data rows.
// Invariant: non-empty after a successful Parse.
type Dataset struct {
	Header []string
	Rows   [][]string
}

// Load reads and parses a CSV file from disk.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses CSV bytes into a Dataset. The first row is the header.
// Malformed rows are skipped. Zero surviving data rows → ErrEmpty.
func Parse(data []byte) (*Dataset, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", ErrEmpty)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	return &Dataset{Header: header, Rows: rows}, nil
}

// ColumnIndex returns the position of a named column, or -1.
func (d *Dataset) ColumnIndex(name string) int {
	for i, h := range d.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Cell returns the raw value at (row, col index), "" when out of range.
func (d *Dataset) Cell(row, col int) string {
	if col < 0 || row < 0 || row >= len(d.Rows) || col >= len(d.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(d.Rows[row][col])
}

// ============================================================================
// VALUE COERCION
// ============================================================================

// Number coerces a cell to a float. Handles thousands separators and
// common currency prefixes ("$1,234.56" → 1234.56). Returns ok=false
// for unparseable values — callers treat those as missing.
func Number(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	for _, sym := range []string{"$", "€", "£"} {
		s = strings.TrimPrefix(s, sym)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		f = -f
	}
	return f, true
}

var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2006",
	"Jan-2006",
}

// ParseDate coerces a cell to a calendar date, trying known formats in
// order. Returns ok=false for unparseable values.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
