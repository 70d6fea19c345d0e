package report

import (
	"strings"
	"testing"

	"github.com/KaramelBytes/comps-cli/internal/comps"
)

func sampleAnalysis() *comps.Analysis {
	res := comps.ComparisonResult{
		NeighborhoodMedian:  320000,
		SimilarModelsMedian: comps.Missing,
		ExactModelsMedian:   comps.Missing,
		SubjectPrice:        305000,
	}
	return &comps.Analysis{
		Subject:  comps.Subject{Beds: 3, Baths: 2, Sqft: 1500, Price: 305000},
		Result:   res,
		Decision: comps.Decide(res),
		Chart:    comps.BuildChart(res, []float64{300000, 320000, 340000}),
	}
}

func TestJSONEncodesProvenanceAndNulls(t *testing.T) {
	rep := New("sales.csv", sampleAnalysis())
	if rep.RunID == "" {
		t.Fatal("run ID must be set")
	}
	b, err := rep.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, rep.RunID) {
		t.Error("JSON missing run ID")
	}
	if !strings.Contains(s, `"source": "sales.csv"`) {
		t.Error("JSON missing source file")
	}
	if !strings.Contains(s, `"similar_models_median": null`) {
		t.Errorf("missing median should encode as null: %s", s)
	}
	if !strings.Contains(s, `"decision": "BUY"`) {
		t.Errorf("expected BUY decision in JSON: %s", s)
	}
}

func TestRenderShowsMissingAsNA(t *testing.T) {
	rep := New("sales.csv", sampleAnalysis())
	var b strings.Builder
	rep.Render(&b)
	out := b.String()

	if !strings.Contains(out, "$305,000") {
		t.Errorf("subject price not formatted: %s", out)
	}
	if !strings.Contains(out, "$320,000") {
		t.Errorf("neighborhood median not formatted: %s", out)
	}
	if !strings.Contains(out, "n/a") {
		t.Errorf("missing medians should render as n/a: %s", out)
	}
	if !strings.Contains(out, "BUY") {
		t.Errorf("decision missing from render: %s", out)
	}
}

func TestMoneyFormatting(t *testing.T) {
	cases := map[float64]string{
		0:       "$0",
		950:     "$950",
		1500:    "$1,500",
		350000:  "$350,000",
		1250000: "$1,250,000",
	}
	for in, want := range cases {
		if got := money(in); got != want {
			t.Errorf("money(%v) = %q, want %q", in, got, want)
		}
	}
	if got := money(comps.Missing); got != "n/a" {
		t.Errorf("money(missing) = %q, want n/a", got)
	}
}
