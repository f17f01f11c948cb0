// ABOUTME: Linear alcohol elimination model over dated drink events.
// ABOUTME: Applies a fixed hepatic elimination rate with a per-event floor at zero.
package alcohol

import (
	"math"
	"time"

	"github.com/harperreed/tipsy/internal/models"
)

// EliminationRate is the average hepatic elimination rate in standard
// units per hour, used by the simple (non-personalized) model.
const EliminationRate = 0.15

// RemainingUnits returns the total standard units still unmetabolized at
// asOf, given the drinks consumed. Each event decays linearly from its own
// timestamp and is floored at zero before summing. Elapsed time is not
// clamped at zero, so a future-dated event contributes slightly more than
// its recorded units until its timestamp passes.
func RemainingUnits(drinks []*models.DrinkEvent, asOf time.Time) float64 {
	var total float64
	for _, d := range drinks {
		if d == nil {
			continue
		}
		hours := asOf.Sub(d.ConsumedAt).Hours()
		remaining := safeUnits(d.Units) - hours*EliminationRate
		if remaining > 0 {
			total += remaining
		}
	}
	return models.Round2(total)
}

func safeUnits(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
