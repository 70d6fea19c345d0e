package comps

import "testing"

// Five sales, no beds/baths/sqft matches: the neighborhood median is the only
// valid comparison. It exceeds the subject price, so every valid comparison
// does, and the BUY branch wins before the higher<=1 check is reached.
func TestRunNeighborhoodOnlyScenario(t *testing.T) {
	df := salesFrame([][]string{
		{"Sale Amount", "Bedrooms", "Bathrooms", "SqFt"},
		{"300000", "4", "3", "2200"},
		{"310000", "4", "3", "2300"},
		{"320000", "4", "2", "2100"},
		{"330000", "5", "3", "2400"},
		{"340000", "5", "4", "2500"},
	})
	subject := Subject{Beds: 3, Baths: 2, Sqft: 1500, Price: 305000}

	analysis, err := New(nil).Run(df, testMapping, subject)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	res := analysis.Result
	if res.NeighborhoodMedian != 320000 {
		t.Errorf("neighborhood median = %v, want 320000", res.NeighborhoodMedian)
	}
	if !IsMissing(res.ExactModelsMedian) || !IsMissing(res.SimilarModelsMedian) {
		t.Errorf("tier medians should be missing with no matches: %+v", res)
	}
	if analysis.Decision != DecisionBuy {
		t.Errorf("decision = %s, want BUY (every valid comparison above subject)", analysis.Decision)
	}
	if len(analysis.Chart.Refs) != 2 {
		t.Errorf("chart refs = %d, want subject + neighborhood", len(analysis.Chart.Refs))
	}
}

func TestRunFullMatchScenario(t *testing.T) {
	df := salesFrame([][]string{
		{"Sale Amount", "Bedrooms", "Bathrooms", "SqFt"},
		{"$350,000", "3", "2", "1500"},
		{"$360,000", "3", "2", "1503"},
		{"$340,000", "3", "1", "1500"},
		{"bad", "3", "2", "1501"},
		{"$200,000", "2", "1", "900"},
	})
	subject := Subject{Beds: 3, Baths: 2, Sqft: 1500, Price: 300000}

	analysis, err := New(nil).Run(df, testMapping, subject)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	res := analysis.Result
	// Exact tier: rows 0, 1 and the bad-price row 3; median of {350k, 360k}.
	if res.ExactModelsMedian != 355000 {
		t.Errorf("exact median = %v, want 355000", res.ExactModelsMedian)
	}
	// Similar tier: rows 0-3; valid prices {340k, 350k, 360k}.
	if res.SimilarModelsMedian != 350000 {
		t.Errorf("similar median = %v, want 350000", res.SimilarModelsMedian)
	}
	// Neighborhood: {200k, 340k, 350k, 360k} → midpoint 345000.
	if res.NeighborhoodMedian != 345000 {
		t.Errorf("neighborhood median = %v, want 345000", res.NeighborhoodMedian)
	}
	// All three comparisons above subject: BUY.
	if analysis.Decision != DecisionBuy {
		t.Errorf("decision = %s, want BUY", analysis.Decision)
	}
}

func TestComparisonResultsComputedFreshPerSubject(t *testing.T) {
	df := salesFrame([][]string{
		{"Sale Amount", "Bedrooms", "Bathrooms", "SqFt"},
		{"300000", "3", "2", "1500"},
		{"400000", "4", "2", "2000"},
	})

	first, _, err := ComparisonResults(df, testMapping, Subject{Beds: 3, Baths: 2, Sqft: 1500, Price: 1})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, _, err := ComparisonResults(df, testMapping, Subject{Beds: 4, Baths: 2, Sqft: 2000, Price: 1})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first.SimilarModelsMedian != 300000 {
		t.Errorf("first similar median = %v, want 300000", first.SimilarModelsMedian)
	}
	if second.SimilarModelsMedian != 400000 {
		t.Errorf("second similar median = %v, want 400000 (dataset reused, result fresh)", second.SimilarModelsMedian)
	}
}
