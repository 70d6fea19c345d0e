// Package comps implements the comparison engine: it evaluates a single
// subject property against a neighborhood sales dataset and produces median
// comparisons, a BUY/PASS/INVESTIGATE call, and a renderable chart spec.
package comps

import (
	"encoding/json"
	"math"
)

// Field is a canonical column name, independent of whatever naming the
// uploaded dataset actually uses. The resolver maps these onto real headers.
type Field string

const (
	FieldPrice   Field = "price"
	FieldAddress Field = "address"
	FieldBeds    Field = "beds"
	FieldBaths   Field = "baths"
	FieldSqft    Field = "sqft"
	FieldDate    Field = "date"
)

// FieldMapping maps canonical fields to actual dataset column names.
// At minimum FieldPrice must be present; the engine does not re-run
// resolution and treats an absent price mapping as a caller error.
type FieldMapping map[Field]string

// Subject is the property under evaluation. Immutable once passed in.
type Subject struct {
	Beds  float64 `json:"beds"`
	Baths float64 `json:"baths"`
	Sqft  float64 `json:"sqft"`
	Price float64 `json:"price"`
}

// Missing marks an absent value: an unparseable cell, an empty match tier,
// or a median over no valid data. Distinct from zero by construction.
var Missing = math.NaN()

// IsMissing reports whether v is the missing marker.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// ComparisonResult holds the three tier medians plus the subject price.
// Any median may be Missing; the subject price is always a real number.
type ComparisonResult struct {
	NeighborhoodMedian  float64
	ExactModelsMedian   float64
	SimilarModelsMedian float64
	SubjectPrice        float64
}

// MarshalJSON encodes missing medians as null so downstream consumers can
// distinguish "no data" from an actual price of zero.
func (r ComparisonResult) MarshalJSON() ([]byte, error) {
	type wire struct {
		NeighborhoodMedian  *float64 `json:"neighborhood_median"`
		ExactModelsMedian   *float64 `json:"exact_models_median"`
		SimilarModelsMedian *float64 `json:"similar_models_median"`
		SubjectPrice        float64  `json:"subject_price"`
	}
	return json.Marshal(wire{
		NeighborhoodMedian:  nullable(r.NeighborhoodMedian),
		ExactModelsMedian:   nullable(r.ExactModelsMedian),
		SimilarModelsMedian: nullable(r.SimilarModelsMedian),
		SubjectPrice:        r.SubjectPrice,
	})
}

func nullable(v float64) *float64 {
	if IsMissing(v) {
		return nil
	}
	return &v
}
