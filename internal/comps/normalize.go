package comps

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// NormalizePrices coerces the mapped price column into a float64 series
// aligned to the dataset's row order. Currency symbols and thousands
// separators are stripped before parsing; cells that still fail to parse
// become Missing rather than an error, so a few corrupt rows degrade the
// medians instead of failing the whole analysis.
//
// The series is returned to the caller instead of being stored back on the
// dataframe; downstream stages take it as an explicit argument.
func NormalizePrices(df dataframe.DataFrame, mapping FieldMapping) ([]float64, error) {
	name, ok := mapping[FieldPrice]
	if !ok || name == "" {
		return nil, fmt.Errorf("field mapping is missing required field %q", FieldPrice)
	}
	col := df.Col(name)
	if col.Err != nil {
		return nil, fmt.Errorf("price column %q: %w", name, col.Err)
	}
	recs := col.Records()
	out := make([]float64, len(recs))
	for i, r := range recs {
		out[i] = parsePrice(r)
	}
	return out, nil
}

// parsePrice handles both pre-numeric columns ("350000") and formatted
// county-export text ("$350,000").
func parsePrice(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Missing
	}
	return f
}

// coerceColumn parses the named column as float64s, Missing on failure.
// Returns nil when the mapping has no such column; callers treat a nil
// series as all-missing.
func coerceColumn(df dataframe.DataFrame, name string) []float64 {
	if name == "" {
		return nil
	}
	col := df.Col(name)
	if col.Err != nil {
		return nil
	}
	recs := col.Records()
	out := make([]float64, len(recs))
	for i, r := range recs {
		f, err := strconv.ParseFloat(strings.TrimSpace(r), 64)
		if err != nil {
			f = Missing
		}
		out[i] = f
	}
	return out
}

func valueAt(vals []float64, i int) float64 {
	if vals == nil || i >= len(vals) {
		return Missing
	}
	return vals[i]
}
