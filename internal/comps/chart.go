package comps

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// HistogramBins is the fixed bin count for the price distribution.
const HistogramBins = 30

// Reference line styling. The colors and label stacking positions are part of
// the chart data contract; the actual drawing belongs to the UI layer.
const (
	colorSubject      = "#FF4B4B"
	colorNeighborhood = "#00CED1"
	colorSimilar      = "#50C878"
	colorExact        = "#BA55D3"
)

// ChartSpec describes the comparison visualization: a histogram of the
// normalized price distribution with dashed vertical reference lines for the
// subject price and the tier medians. It is renderer-agnostic.
type ChartSpec struct {
	Title      string     `json:"title"`
	XTitle     string     `json:"x_title"`
	YTitle     string     `json:"y_title"`
	SeriesName string     `json:"series_name"`
	Opacity    float64    `json:"opacity"`
	XRange     [2]float64 `json:"x_range"`
	Bins       []Bin      `json:"bins"`
	Refs       []RefLine  `json:"reference_lines"`
}

// Bin is one histogram bucket over [Start, End).
type Bin struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
}

// RefLine is a labeled vertical marker. LabelY is the vertical stacking
// position of the label in paper coordinates so labels do not overlap.
type RefLine struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Color  string  `json:"color"`
	LabelY float64 `json:"label_y"`
	Dash   string  `json:"dash"`
}

// BuildChart assembles the chart spec from the comparison result and the full
// normalized price series. Reference lines with missing values are omitted,
// and the x-range is widened so that no remaining reference line is clipped.
func BuildChart(r ComparisonResult, prices []float64) ChartSpec {
	spec := ChartSpec{
		Title:      "Subject Property Price Comparison",
		XTitle:     "Price",
		YTitle:     "Number of Sales",
		SeriesName: "Neighborhood Sales",
		Opacity:    0.7,
	}

	for _, ref := range []RefLine{
		{Label: "Subject Price", Value: r.SubjectPrice, Color: colorSubject, LabelY: 1.15, Dash: "dash"},
		{Label: "Neighborhood Median", Value: r.NeighborhoodMedian, Color: colorNeighborhood, LabelY: 1.10, Dash: "dash"},
		{Label: "Similar Models Median", Value: r.SimilarModelsMedian, Color: colorSimilar, LabelY: 1.05, Dash: "dash"},
		{Label: "Exact Models Median", Value: r.ExactModelsMedian, Color: colorExact, LabelY: 1.00, Dash: "dash"},
	} {
		if !IsMissing(ref.Value) {
			spec.Refs = append(spec.Refs, ref)
		}
	}

	valid := make([]float64, 0, len(prices))
	for _, p := range prices {
		if !IsMissing(p) {
			valid = append(valid, p)
		}
	}
	sort.Float64s(valid)

	lo, hi := span(valid, spec.Refs)
	spec.XRange = [2]float64{lo, hi}

	if len(valid) > 0 {
		edges := floats.Span(make([]float64, HistogramBins+1), lo, hi)
		// stat.Histogram requires samples strictly below the top divider;
		// nudge it so the maximum price lands in the last bin.
		dividers := append([]float64(nil), edges...)
		dividers[len(dividers)-1] = math.Nextafter(hi, math.Inf(1))
		counts := stat.Histogram(nil, dividers, valid, nil)
		spec.Bins = make([]Bin, HistogramBins)
		for i := range spec.Bins {
			spec.Bins[i] = Bin{Start: edges[i], End: edges[i+1], Count: int(counts[i])}
		}
	}
	return spec
}

// span covers both the sorted price data and every emitted reference value.
// A degenerate range (single distinct value) is padded so binning stays
// well defined.
func span(sortedPrices []float64, refs []RefLine) (lo, hi float64) {
	set := false
	extend := func(v float64) {
		if !set {
			lo, hi = v, v
			set = true
			return
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if len(sortedPrices) > 0 {
		extend(sortedPrices[0])
		extend(sortedPrices[len(sortedPrices)-1])
	}
	for _, ref := range refs {
		extend(ref.Value)
	}
	if !set {
		return 0, 1
	}
	if lo == hi {
		hi = lo + 1
	}
	return lo, hi
}
