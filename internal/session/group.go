// ABOUTME: Group-level aggregation of per-member session drinks.
// ABOUTME: Produces member stats, a group-wide average, and the session start time.
package session

import (
	"math"
	"time"

	"github.com/harperreed/tipsy/internal/models"
)

// MemberStats summarizes one member's current session.
type MemberStats struct {
	Drinks int
	Units  float64
}

// GroupStats summarizes the current session across a group of members.
type GroupStats struct {
	SessionGroupAverage float64
	SessionMemberStats  map[string]MemberStats
	// SessionStartTime is the earliest session drink across all members;
	// zero when nobody has a session drink.
	SessionStartTime time.Time
}

// GroupSessionStats computes per-member session statistics over the
// supplied drinks. Members without session drinks are omitted from the
// stats map. The average divides by the literal member count passed in;
// duplicate ids are counted once in the numerator but the caller owns
// deduplicating the denominator.
func GroupSessionStats(drinks []*models.DrinkEvent, memberIDs []string) GroupStats {
	stats := make(map[string]MemberStats, len(memberIDs))
	var totalUnits float64
	var startTime time.Time

	for _, id := range memberIDs {
		if _, done := stats[id]; done {
			continue
		}
		own := Drinks(drinks, id)
		if len(own) == 0 {
			continue
		}
		var units float64
		for _, d := range own {
			if !math.IsNaN(d.Units) && !math.IsInf(d.Units, 0) && d.Units > 0 {
				units += d.Units
			}
		}
		stats[id] = MemberStats{
			Drinks: len(own),
			Units:  models.Round2(units),
		}
		totalUnits += units
		if startTime.IsZero() || own[0].ConsumedAt.Before(startTime) {
			startTime = own[0].ConsumedAt
		}
	}

	denom := len(memberIDs)
	if denom < 1 {
		denom = 1
	}
	return GroupStats{
		SessionGroupAverage: models.Round2(totalUnits / float64(denom)),
		SessionMemberStats:  stats,
		SessionStartTime:    startTime,
	}
}
