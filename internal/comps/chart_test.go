package comps

import "testing"

func TestBuildChartHistogramAndRange(t *testing.T) {
	prices := []float64{300000, 310000, 320000, 330000, 340000, Missing}
	r := ComparisonResult{
		NeighborhoodMedian:  320000,
		SimilarModelsMedian: 310000,
		ExactModelsMedian:   Missing,
		SubjectPrice:        250000, // below the data minimum
	}
	spec := BuildChart(r, prices)

	if len(spec.Bins) != HistogramBins {
		t.Fatalf("bins = %d, want %d", len(spec.Bins), HistogramBins)
	}
	total := 0
	for _, b := range spec.Bins {
		total += b.Count
	}
	if total != 5 {
		t.Errorf("binned %d values, want 5 (missing excluded)", total)
	}
	// X-range must cover every valid reference so no line is clipped.
	if spec.XRange[0] > 250000 {
		t.Errorf("x-range low %v clips subject price reference", spec.XRange[0])
	}
	if spec.XRange[1] < 340000 {
		t.Errorf("x-range high %v clips data maximum", spec.XRange[1])
	}
}

func TestBuildChartOmitsMissingReferences(t *testing.T) {
	r := ComparisonResult{
		NeighborhoodMedian:  320000,
		SimilarModelsMedian: Missing,
		ExactModelsMedian:   Missing,
		SubjectPrice:        305000,
	}
	spec := BuildChart(r, []float64{300000, 340000})

	if len(spec.Refs) != 2 {
		t.Fatalf("refs = %d, want 2 (missing medians omitted)", len(spec.Refs))
	}
	for _, ref := range spec.Refs {
		if ref.Label == "Similar Models Median" || ref.Label == "Exact Models Median" {
			t.Errorf("missing reference %q must not be emitted", ref.Label)
		}
		if ref.Dash != "dash" || ref.Color == "" {
			t.Errorf("reference %q lacks styling: %+v", ref.Label, ref)
		}
	}
	if spec.Refs[0].LabelY == spec.Refs[1].LabelY {
		t.Error("reference labels must stack at distinct vertical positions")
	}
}

func TestBuildChartNoValidPrices(t *testing.T) {
	r := ComparisonResult{
		NeighborhoodMedian:  Missing,
		SimilarModelsMedian: Missing,
		ExactModelsMedian:   Missing,
		SubjectPrice:        305000,
	}
	spec := BuildChart(r, []float64{Missing, Missing})

	if len(spec.Bins) != 0 {
		t.Errorf("expected no bins without valid prices, got %d", len(spec.Bins))
	}
	if len(spec.Refs) != 1 || spec.Refs[0].Label != "Subject Price" {
		t.Errorf("expected only the subject reference, got %+v", spec.Refs)
	}
	if spec.XRange[0] >= spec.XRange[1] {
		t.Errorf("degenerate x-range not padded: %v", spec.XRange)
	}
}
