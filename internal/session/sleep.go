// ABOUTME: Sleep detection from step-counter activity samples.
// ABOUTME: Accumulates contiguous low-activity time scanning from the most recent sample backward.
package session

import (
	"math"
	"sort"
	"time"

	"github.com/harperreed/tipsy/internal/models"
)

// Heuristic constants tuned for a nightlife context, not calibrated
// physiology. Overridable for other sampling setups.
var (
	// LowActivityStepThreshold is the step count per sample below which an
	// interval reads as inactive.
	LowActivityStepThreshold = 30.0

	// NominalSampleInterval is the expected spacing between samples, used
	// for the most recent sample which has no successor to measure against.
	NominalSampleInterval = 10 * time.Minute
)

// SleepMinHours is the default minimum low-activity duration that counts
// as sleep.
const SleepMinHours = 3.0

// SleepResult reports whether the subject is in a low-activity state and
// for how long.
type SleepResult struct {
	IsSleeping      bool
	InactivityHours float64
}

// DetectSleep scans samples from the most recent backward, accumulating
// contiguous low-activity duration, and reports sleep once that duration
// reaches minHours. Samples with unusable timestamps are skipped; corrupt
// step counts are sanitized per sample, so one bad reading neither crashes
// the scan nor discards it. The result is always a plain bool and a finite
// non-negative duration.
func DetectSleep(samples []*models.ActivitySample, minHours float64) SleepResult {
	if math.IsNaN(minHours) || math.IsInf(minHours, 0) || minHours < 0 {
		minHours = SleepMinHours
	}

	usable := make([]*models.ActivitySample, 0, len(samples))
	for _, s := range samples {
		if s == nil || s.RecordedAt.IsZero() {
			continue
		}
		usable = append(usable, s)
	}
	if len(usable) == 0 {
		return SleepResult{}
	}
	sort.Slice(usable, func(i, j int) bool {
		return usable[i].RecordedAt.After(usable[j].RecordedAt)
	})

	var inactive time.Duration
	for i, s := range usable {
		if s.Steps.SafeTotal() >= LowActivityStepThreshold {
			break
		}
		if i == 0 {
			inactive += NominalSampleInterval
		} else {
			inactive += usable[i-1].RecordedAt.Sub(s.RecordedAt)
		}
	}

	hours := inactive.Hours()
	return SleepResult{
		IsSleeping:      hours >= minHours,
		InactivityHours: hours,
	}
}
