package loader

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/heartmarshall/movieloader/internal/domain"
	"github.com/heartmarshall/movieloader/internal/sheet"
)

// cell reads col strictly. A missing column is not an error here: it reports
// ok=false, as does a blank (whitespace-only) cell. Non-blank values are
// returned verbatim; names are matched exactly, surrounding spaces included.
func cell(row sheet.Row, col string) (string, bool) {
	v, err := row.Lookup(col)
	if errors.Is(err, sheet.ErrMissingColumn) || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// optional reads a default-on-missing text column. A present blank cell
// yields "" so it is stored as NULL.
func optional(row sheet.Row, col string) string {
	v := row.GetOr(col, domain.NoneValue)
	if strings.TrimSpace(v) == "" {
		return ""
	}
	return v
}

// movieFromRow builds the movie for a titled row. Missing optional columns
// take domain.NoneValue; a missing or non-numeric year is nil.
func movieFromRow(row sheet.Row, title string) domain.Movie {
	return domain.Movie{
		Title:    title,
		EngTitle: optional(row, ColEngTitle),
		Year:     parseYear(row.GetOr(ColYear, "")),
		Country:  optional(row, ColCountry),
		Type:     optional(row, ColType),
		Status:   optional(row, ColStatus),
		Company:  optional(row, ColCompany),
	}
}

// parseYear accepts "2019" and spreadsheet numerics such as "2019.0".
// Values outside the INT column range are treated as non-numeric.
func parseYear(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return nil
	}
	n := int(f)
	return &n
}
