// ABOUTME: BodyProfile model with optional fields and population-average defaults.
// ABOUTME: Resolve() merges a possibly-nil profile into a fully-populated value struct.
package models

import "math"

// Gender selects the Widmark body-water coefficient.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValidGender checks if a string is a valid gender value.
func IsValidGender(s string) bool {
	return s == string(GenderMale) || s == string(GenderFemale)
}

// ActivityLevel describes habitual physical activity.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// AllActivityLevels returns all valid activity levels.
var AllActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLight, ActivityModerate,
	ActivityActive, ActivityVeryActive,
}

// IsValidActivityLevel checks if a string is a valid activity level.
func IsValidActivityLevel(s string) bool {
	for _, l := range AllActivityLevels {
		if string(l) == s {
			return true
		}
	}
	return false
}

// BodyProfile holds subject metabolism inputs. Every field is optional;
// collaborators may supply a partial profile or none at all.
type BodyProfile struct {
	Age           *int
	Gender        *Gender
	HeightCm      *float64
	WeightKg      *float64
	ActivityLevel *ActivityLevel
}

// ResolvedProfile is a BodyProfile with every field populated, either from
// the source profile or from population-average defaults.
type ResolvedProfile struct {
	Age           int
	Gender        Gender
	HeightCm      float64
	WeightKg      float64
	ActivityLevel ActivityLevel
}

// Profile defaults applied when a field is absent or unusable.
const (
	DefaultAge      = 30
	DefaultHeightCm = 170.0
	DefaultWeightKg = 70.0
)

// Resolve merges the profile with defaults in a single step. A nil receiver
// resolves to the full default profile. Non-finite or non-positive numeric
// fields are treated as absent.
func (p *BodyProfile) Resolve() ResolvedProfile {
	r := ResolvedProfile{
		Age:           DefaultAge,
		Gender:        GenderMale,
		HeightCm:      DefaultHeightCm,
		WeightKg:      DefaultWeightKg,
		ActivityLevel: ActivityModerate,
	}
	if p == nil {
		return r
	}
	if p.Age != nil && *p.Age > 0 {
		r.Age = *p.Age
	}
	if p.Gender != nil && IsValidGender(string(*p.Gender)) {
		r.Gender = *p.Gender
	}
	if p.HeightCm != nil && usableMeasure(*p.HeightCm) {
		r.HeightCm = *p.HeightCm
	}
	if p.WeightKg != nil && usableMeasure(*p.WeightKg) {
		r.WeightKg = *p.WeightKg
	}
	if p.ActivityLevel != nil && IsValidActivityLevel(string(*p.ActivityLevel)) {
		r.ActivityLevel = *p.ActivityLevel
	}
	return r
}

// BMI computes body mass index from the resolved height and weight.
func (r ResolvedProfile) BMI() float64 {
	heightM := r.HeightCm / 100
	return r.WeightKg / (heightM * heightM)
}

func usableMeasure(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
