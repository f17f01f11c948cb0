// ABOUTME: ActivitySample model for step-counter data.
// ABOUTME: Step counts are float64 so corrupt collaborator data survives decoding.
package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// StepCounts holds step counts for one sampling interval, split by kind.
// Counts are float64 because upstream step-counter services have been seen
// to deliver NaN, Infinity, and negative values; sanitizing happens at use
// sites via Safe methods rather than at decode time.
type StepCounts struct {
	Walking float64
	Dancing float64
	Total   float64
}

// SafeTotal returns a usable total step count. A NaN, infinite, or negative
// total falls back to walking+dancing (each coerced the same way), so a
// single corrupt field never poisons the whole sample.
func (s StepCounts) SafeTotal() float64 {
	if usableCount(s.Total) {
		return s.Total
	}
	return safeCount(s.Walking) + safeCount(s.Dancing)
}

func usableCount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func safeCount(v float64) float64 {
	if usableCount(v) {
		return v
	}
	return 0
}

// ActivitySample represents one step-counter reading, nominally taken at a
// fixed sampling interval.
type ActivitySample struct {
	ID         uuid.UUID
	RecordedAt time.Time
	Steps      StepCounts
	CreatedAt  time.Time
}

// NewActivitySample creates a new ActivitySample with generated UUID and
// current timestamp.
func NewActivitySample(walking, dancing float64) *ActivitySample {
	now := time.Now()
	return &ActivitySample{
		ID:         uuid.New(),
		RecordedAt: now,
		Steps: StepCounts{
			Walking: walking,
			Dancing: dancing,
			Total:   safeCount(walking) + safeCount(dancing),
		},
		CreatedAt: now,
	}
}

// WithRecordedAt sets a custom sample timestamp.
func (a *ActivitySample) WithRecordedAt(t time.Time) *ActivitySample {
	a.RecordedAt = t
	return a
}
