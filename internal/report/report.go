// Package report renders analysis results for the terminal and for JSON
// consumers such as the chart-hosting UI.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/comps-cli/internal/comps"
	"github.com/KaramelBytes/comps-cli/internal/utils"
)

// Report wraps one analysis run with provenance for downstream consumers.
type Report struct {
	RunID       string          `json:"run_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Source      string          `json:"source"`
	Analysis    *comps.Analysis `json:"analysis"`
}

// New stamps the analysis with a run ID and timestamp.
func New(source string, analysis *comps.Analysis) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		Analysis:    analysis,
	}
}

// JSON returns the indented JSON encoding. Missing medians encode as null.
func (r *Report) JSON() ([]byte, error) {
	return utils.PrettyJSON(r)
}

// Render writes a terminal summary of the comparison and decision.
func (r *Report) Render(w io.Writer) {
	res := r.Analysis.Result
	thin := strings.Repeat("─", 46)

	fmt.Fprintf(w, "\n\033[1;35m  PROPERTY COMPS — %s\033[0m\n", r.Source)
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Subject price          : \033[1m%s\033[0m\n", money(res.SubjectPrice))
	fmt.Fprintf(w, "  Neighborhood median    : %s\n", money(res.NeighborhoodMedian))
	fmt.Fprintf(w, "  Similar models median  : %s\n", money(res.SimilarModelsMedian))
	fmt.Fprintf(w, "  Exact models median    : %s\n", money(res.ExactModelsMedian))
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Decision               : %s\n\n", decisionColor(r.Analysis.Decision))
}

func decisionColor(d comps.Decision) string {
	switch d {
	case comps.DecisionBuy:
		return fmt.Sprintf("\033[1;32m%s\033[0m", d)
	case comps.DecisionPass:
		return fmt.Sprintf("\033[1;31m%s\033[0m", d)
	default:
		return fmt.Sprintf("\033[1;33m%s\033[0m", d)
	}
}

// money formats a price with thousands separators; missing values render as
// "n/a" so they cannot be mistaken for $0.
func money(v float64) string {
	if comps.IsMissing(v) {
		return "n/a"
	}
	s := fmt.Sprintf("%.0f", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "$" + b.String()
	if neg {
		out = "-" + out
	}
	return out
}
