// Package resolver maps canonical analysis fields onto the actual column
// headers of an uploaded sales dataset. County and MLS exports name the same
// columns a dozen different ways; the alias table below covers the variants
// seen in practice and can be extended through configuration.
package resolver

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/comps-cli/internal/comps"
)

// fieldOrder fixes resolution order so results are deterministic.
var fieldOrder = []comps.Field{
	comps.FieldPrice,
	comps.FieldAddress,
	comps.FieldBeds,
	comps.FieldBaths,
	comps.FieldSqft,
	comps.FieldDate,
}

var defaultAliases = map[comps.Field][]string{
	comps.FieldPrice:   {"price", "saleamount", "sale amount", "sale price", "amount", "lastsaleprice"},
	comps.FieldAddress: {"address", "property address", "location", "street address", "siteaddress"},
	comps.FieldBeds:    {"beds", "bedrooms", "br", "number of bedrooms", "bed", "totalbedrooms"},
	comps.FieldBaths:   {"baths", "bathrooms", "ba", "number of bathrooms", "bath", "totalbathrooms"},
	comps.FieldSqft:    {"sqft", "square feet", "squarefeet", "living area", "size", "living", "totalheatedareasqft"},
	comps.FieldDate:    {"date", "saledate", "sale date", "transaction date", "date sold", "lastsaledate"},
}

// required lists fields without which the analysis cannot run.
var required = []comps.Field{comps.FieldPrice}

// MissingRequiredError reports required fields with no matching header.
// Resolve still returns the partial mapping alongside it.
type MissingRequiredError struct {
	Fields []comps.Field
}

func (e *MissingRequiredError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return fmt.Sprintf("no column matched required field(s): %s", strings.Join(names, ", "))
}

// Table is an alias lookup table.
type Table struct {
	aliases map[comps.Field][]string
}

// NewTable returns a Table seeded with the default aliases.
func NewTable() *Table {
	t := &Table{aliases: make(map[comps.Field][]string, len(defaultAliases))}
	for f, names := range defaultAliases {
		t.aliases[f] = append([]string(nil), names...)
	}
	return t
}

// Extend adds extra aliases for a canonical field. Unknown field names are
// ignored so stale config entries do not break resolution.
func (t *Table) Extend(field string, names ...string) {
	f := comps.Field(strings.ToLower(strings.TrimSpace(field)))
	if _, ok := t.aliases[f]; !ok {
		return
	}
	t.aliases[f] = append(t.aliases[f], names...)
}

// Resolve matches dataset headers against the alias table and returns the
// field mapping. Matching is case-, space-, underscore- and hyphen-
// insensitive; an exact alias match is preferred, then a substring match for
// aliases long enough not to false-positive. Each header is consumed by at
// most one field. If a required field stays unmatched, the partial mapping is
// returned together with a *MissingRequiredError.
func (t *Table) Resolve(headers []string) (comps.FieldMapping, error) {
	mapping := make(comps.FieldMapping, len(fieldOrder))
	used := make(map[string]bool, len(headers))

	for _, f := range fieldOrder {
		if h, ok := t.match(f, headers, used, exactMatch); ok {
			mapping[f] = h
			used[h] = true
		}
	}
	// Second pass: looser matching for fields still unmapped.
	for _, f := range fieldOrder {
		if _, ok := mapping[f]; ok {
			continue
		}
		if h, ok := t.match(f, headers, used, substringMatch); ok {
			mapping[f] = h
			used[h] = true
		}
	}

	var missing []comps.Field
	for _, f := range required {
		if _, ok := mapping[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return mapping, &MissingRequiredError{Fields: missing}
	}
	return mapping, nil
}

func (t *Table) match(f comps.Field, headers []string, used map[string]bool, fn func(header, alias string) bool) (string, bool) {
	for _, h := range headers {
		if used[h] {
			continue
		}
		nh := normalize(h)
		if nh == "" {
			continue
		}
		for _, alias := range t.aliases[f] {
			if fn(nh, normalize(alias)) {
				return h, true
			}
		}
	}
	return "", false
}

func exactMatch(header, alias string) bool { return header == alias }

// substringMatch requires at least four characters of alias to avoid short
// tokens like "br" or "ba" matching unrelated headers.
func substringMatch(header, alias string) bool {
	return len(alias) >= 4 && strings.Contains(header, alias)
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, cut := range []string{" ", "_", "-"} {
		s = strings.ReplaceAll(s, cut, "")
	}
	return s
}
