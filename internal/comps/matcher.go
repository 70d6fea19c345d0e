package comps

import (
	"math"

	"github.com/go-gota/gota/dataframe"
)

// SqftTolerance is the inclusive band around the subject's square footage for
// the exact tier. Fixed policy, not configurable per call.
const SqftTolerance = 5.0

// MatchTiers computes row-inclusion masks for the two comparison tiers:
//
//	exact:   beds and baths equal the subject, sqft within ±SqftTolerance
//	similar: beds equal the subject (baths and sqft ignored)
//
// beds/baths/sqft are coerced on each call; rows whose relevant cells fail to
// parse are excluded from the tier. Empty tiers are a valid outcome, as is a
// mapping that lacks any of the three columns.
func MatchTiers(df dataframe.DataFrame, mapping FieldMapping, subject Subject) (exact, similar []bool) {
	n := df.Nrow()
	exact = make([]bool, n)
	similar = make([]bool, n)

	beds := coerceColumn(df, mapping[FieldBeds])
	baths := coerceColumn(df, mapping[FieldBaths])
	sqft := coerceColumn(df, mapping[FieldSqft])

	for i := 0; i < n; i++ {
		b := valueAt(beds, i)
		if IsMissing(b) || b != subject.Beds {
			continue
		}
		similar[i] = true

		ba := valueAt(baths, i)
		sq := valueAt(sqft, i)
		if IsMissing(ba) || IsMissing(sq) {
			continue
		}
		if ba == subject.Baths && math.Abs(sq-subject.Sqft) <= SqftTolerance {
			exact[i] = true
		}
	}
	return exact, similar
}

func countTrue(mask []bool) int {
	n := 0
	for _, m := range mask {
		if m {
			n++
		}
	}
	return n
}
