// ABOUTME: Consumption-pace classification over a drink sequence.
// ABOUTME: Classifies average inter-drink gaps into slow/moderate/fast/binge with a BAC adjustment factor.
package alcohol

import (
	"math"
	"sort"

	"github.com/harperreed/tipsy/internal/models"
)

// Pattern classifies how quickly a sequence of drinks was consumed.
type Pattern string

const (
	PatternSlow     Pattern = "slow"
	PatternModerate Pattern = "moderate"
	PatternFast     Pattern = "fast"
	PatternBinge    Pattern = "binge"
)

// Pace classification boundaries, in minutes of average gap between drinks.
const (
	bingeGapMinutes = 15
	fastGapMinutes  = 30
	slowGapMinutes  = 60
)

// PaceResult describes the pacing of a drink sequence.
type PaceResult struct {
	// AverageGapMinutes is rounded to the nearest minute for display;
	// classification uses the unrounded average.
	AverageGapMinutes float64
	SpeedFactor       float64
	Pattern           Pattern
}

// neutralPace is returned when fewer than two drinks exist.
var neutralPace = PaceResult{
	AverageGapMinutes: 60,
	SpeedFactor:       1.0,
	Pattern:           PatternModerate,
}

// AnalyzePace classifies the pacing of a drink sequence. The input order
// does not matter; drinks are sorted chronologically before gaps are
// measured, so the result is deterministic for a given set of timestamps.
func AnalyzePace(drinks []*models.DrinkEvent) PaceResult {
	sorted := make([]*models.DrinkEvent, 0, len(drinks))
	for _, d := range drinks {
		if d != nil {
			sorted = append(sorted, d)
		}
	}
	if len(sorted) < 2 {
		return neutralPace
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ConsumedAt.Before(sorted[j].ConsumedAt)
	})

	var totalMinutes float64
	for i := 1; i < len(sorted); i++ {
		totalMinutes += sorted[i].ConsumedAt.Sub(sorted[i-1].ConsumedAt).Minutes()
	}
	avg := totalMinutes / float64(len(sorted)-1)

	pattern, factor := classifyGap(avg)
	return PaceResult{
		AverageGapMinutes: math.Round(avg),
		SpeedFactor:       factor,
		Pattern:           pattern,
	}
}

// classifyGap maps an average inter-drink gap to a pattern and BAC factor.
// An average of exactly 60 minutes still counts as moderate; only gaps
// beyond an hour read as slow.
func classifyGap(avgMinutes float64) (Pattern, float64) {
	switch {
	case avgMinutes < bingeGapMinutes:
		return PatternBinge, 1.4
	case avgMinutes < fastGapMinutes:
		return PatternFast, 1.2
	case avgMinutes <= slowGapMinutes:
		return PatternModerate, 1.0
	default:
		return PatternSlow, 0.85
	}
}
