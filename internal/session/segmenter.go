// ABOUTME: Session segmentation of a user's drink history.
// ABOUTME: Splits on long time gaps, optionally refined by activity-based sleep detection.
package session

import (
	"sort"
	"time"

	"github.com/harperreed/tipsy/internal/models"
)

// Gap thresholds for session boundaries. A gap strictly greater than
// SessionGap always breaks a session; a gap of at least SleepAwareGap
// breaks it only when sleep was detected during the gap.
const (
	SessionGap    = 240 * time.Minute
	SleepAwareGap = 180 * time.Minute
)

// Drinks returns the user's current session: the trailing run of their
// chronologically-ordered drinks in which no two adjacent events are more
// than SessionGap apart. Templates and other users' drinks are excluded.
// The result is never nil-unsafe: empty input or an unknown user yields an
// empty slice.
func Drinks(all []*models.DrinkEvent, userID string) []*models.DrinkEvent {
	return segment(all, userID, func(gap time.Duration) bool {
		return gap > SessionGap
	})
}

// DrinksWithActivity behaves like Drinks, but when activity samples are
// available it also ends the session at gaps of SleepAwareGap or more
// during which the subject was detected asleep. With no samples the result
// is exactly that of Drinks.
func DrinksWithActivity(all []*models.DrinkEvent, samples []*models.ActivitySample, userID string) []*models.DrinkEvent {
	if len(samples) == 0 {
		return Drinks(all, userID)
	}
	return segment(all, userID, func(gap time.Duration) bool {
		return gap > SessionGap
	}, samples)
}

type splitFunc func(gap time.Duration) bool

func segment(all []*models.DrinkEvent, userID string, split splitFunc, samples ...[]*models.ActivitySample) []*models.DrinkEvent {
	own := make([]*models.DrinkEvent, 0, len(all))
	for _, d := range all {
		if d == nil || d.IsTemplate || d.UserID != userID {
			continue
		}
		own = append(own, d)
	}
	if len(own) == 0 {
		return own
	}
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].ConsumedAt.Before(own[j].ConsumedAt)
	})

	var activity []*models.ActivitySample
	if len(samples) > 0 {
		activity = samples[0]
	}

	// Walk backward from the most recent drink until a disqualifying gap.
	start := 0
	for i := len(own) - 1; i > 0; i-- {
		gap := own[i].ConsumedAt.Sub(own[i-1].ConsumedAt)
		if split(gap) || sleptThrough(activity, own[i-1].ConsumedAt, own[i].ConsumedAt, gap) {
			start = i
			break
		}
	}
	return own[start:]
}

// sleepCoverage is the fraction of a gap that must read as low activity
// for the gap to count as slept through. Samples land strictly inside the
// gap, so demanding the full gap length would never be satisfiable.
const sleepCoverage = 0.8

// sleptThrough reports whether the gap between two drinks qualifies as a
// sleep break: at least SleepAwareGap long, with the sleep detector firing
// on the activity samples recorded inside the gap.
func sleptThrough(samples []*models.ActivitySample, from, to time.Time, gap time.Duration) bool {
	if len(samples) == 0 || gap < SleepAwareGap {
		return false
	}
	var inGap []*models.ActivitySample
	for _, s := range samples {
		if s == nil {
			continue
		}
		if s.RecordedAt.After(from) && s.RecordedAt.Before(to) {
			inGap = append(inGap, s)
		}
	}
	return DetectSleep(inGap, sleepCoverage*gap.Hours()).IsSleeping
}
