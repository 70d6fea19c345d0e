package comps

import (
	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"
)

// Analysis is the full outcome of one pipeline run.
type Analysis struct {
	Subject  Subject          `json:"subject"`
	Result   ComparisonResult `json:"comparison"`
	Decision Decision         `json:"decision"`
	Chart    ChartSpec        `json:"chart"`
}

// Analyzer runs the comparison pipeline: normalize, match, aggregate, decide.
// The dataset is read-only throughout; each run recomputes everything, so a
// single dataframe can be reused across sequential subjects.
type Analyzer struct {
	log *zap.Logger
}

// New creates an Analyzer. A nil logger disables logging.
func New(log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{log: log}
}

// ComparisonResults computes the tier medians for the subject. The normalized
// price series is returned alongside the result so callers can feed it to
// BuildChart without a second normalization pass.
func ComparisonResults(df dataframe.DataFrame, mapping FieldMapping, subject Subject) (ComparisonResult, []float64, error) {
	prices, err := NormalizePrices(df, mapping)
	if err != nil {
		return ComparisonResult{}, nil, err
	}
	exact, similar := MatchTiers(df, mapping, subject)
	res := ComparisonResult{
		NeighborhoodMedian:  Median(prices),
		ExactModelsMedian:   MedianWhere(prices, exact),
		SimilarModelsMedian: MedianWhere(prices, similar),
		SubjectPrice:        subject.Price,
	}
	return res, prices, nil
}

// Run executes all four stages to completion and assembles the chart spec.
func (a *Analyzer) Run(df dataframe.DataFrame, mapping FieldMapping, subject Subject) (*Analysis, error) {
	prices, err := NormalizePrices(df, mapping)
	if err != nil {
		return nil, err
	}
	exact, similar := MatchTiers(df, mapping, subject)

	res := ComparisonResult{
		NeighborhoodMedian:  Median(prices),
		ExactModelsMedian:   MedianWhere(prices, exact),
		SimilarModelsMedian: MedianWhere(prices, similar),
		SubjectPrice:        subject.Price,
	}
	dec := Decide(res)

	validPrices := 0
	for _, p := range prices {
		if !IsMissing(p) {
			validPrices++
		}
	}
	a.log.Debug("comparison complete",
		zap.Int("rows", df.Nrow()),
		zap.Int("valid_prices", validPrices),
		zap.Int("exact_matches", countTrue(exact)),
		zap.Int("similar_matches", countTrue(similar)),
		zap.String("decision", string(dec)),
	)

	return &Analysis{
		Subject:  subject,
		Result:   res,
		Decision: dec,
		Chart:    BuildChart(res, prices),
	}, nil
}
