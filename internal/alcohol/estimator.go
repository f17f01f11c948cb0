// ABOUTME: Widmark-style blood and breath alcohol estimation.
// ABOUTME: Simple variant uses fixed coefficients; advanced variant personalizes from a body profile.
package alcohol

import (
	"math"

	"github.com/harperreed/tipsy/internal/models"
)

const (
	widmarkMale   = 0.7
	widmarkFemale = 0.6

	gramsPerUnit = 10.0

	// Breath value is reported in mg/L at a fixed 2:1 blood:breath scaling.
	breathRatio = 0.5
)

// Estimate holds a simple blood/breath alcohol estimate.
type Estimate struct {
	BloodAlcohol  float64 // g/L
	BreathAlcohol float64 // mg/L
}

// MetabolismInfo exposes intermediate metabolism figures from the advanced
// estimator.
type MetabolismInfo struct {
	BMI float64
}

// AdvancedEstimate is a personalized blood/breath alcohol estimate.
type AdvancedEstimate struct {
	BloodAlcohol     float64 // g/L
	BreathAlcohol    float64 // mg/L
	EliminationRate  float64 // units/hour
	TimeToSoberHours float64
	WidmarkFactor    float64
	Metabolism       MetabolismInfo
}

// EstimateBAC converts a current unit load into blood and breath alcohol
// using population-average Widmark coefficients. Unusable inputs are
// coerced: negative or non-finite units become 0, a non-positive weight
// becomes the default weight, a non-positive speed factor becomes 1.
func EstimateBAC(currentUnits, weightKg float64, male bool, speedFactor float64) Estimate {
	units := safeUnits(currentUnits)
	weight := weightKg
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		weight = models.DefaultWeightKg
	}
	factor := speedFactor
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		factor = 1.0
	}

	widmark := widmarkMale
	if !male {
		widmark = widmarkFemale
	}

	blood := models.Round2(units * gramsPerUnit / (weight * widmark) * factor)
	return Estimate{
		BloodAlcohol:  blood,
		BreathAlcohol: models.Round2(blood * breathRatio),
	}
}

// EstimateAdvanced personalizes the Widmark estimate from a body profile.
// The profile may be nil or arbitrarily partial; defaults fill the gaps.
// Leaner, younger, and more active subjects get a slightly faster
// elimination rate; the distribution coefficient shifts with BMI. Every
// returned field is finite and non-negative.
func EstimateAdvanced(currentUnits float64, profile *models.BodyProfile) AdvancedEstimate {
	units := safeUnits(currentUnits)
	r := profile.Resolve()
	bmi := r.BMI()

	widmark := personalWidmark(r.Gender, bmi)
	rate := personalEliminationRate(r, bmi)

	blood := models.Round2(units * gramsPerUnit / (r.WeightKg * widmark))
	return AdvancedEstimate{
		BloodAlcohol:     blood,
		BreathAlcohol:    models.Round2(blood * breathRatio),
		EliminationRate:  rate,
		TimeToSoberHours: models.Round2(units / rate),
		WidmarkFactor:    widmark,
		Metabolism:       MetabolismInfo{BMI: models.Round2(bmi)},
	}
}

// personalWidmark shifts the sex-specific body-water coefficient by BMI:
// higher body fat means less body water to distribute alcohol into. The
// female window sits exactly 0.1 below the male window so a female profile
// always yields at least the blood alcohol of an equal-weight male profile.
func personalWidmark(gender models.Gender, bmi float64) float64 {
	base := widmarkMale
	lo, hi := 0.6, 0.75
	if gender == models.GenderFemale {
		base = widmarkFemale
		lo, hi = 0.5, 0.65
	}
	w := base - (bmi-22)*0.005
	return clamp(w, lo, hi)
}

// personalEliminationRate nudges the average rate for activity level, BMI,
// and age, clamped to a physiologically plausible window.
func personalEliminationRate(r models.ResolvedProfile, bmi float64) float64 {
	rate := EliminationRate
	switch r.ActivityLevel {
	case models.ActivitySedentary:
		rate -= 0.01
	case models.ActivityLight:
		rate -= 0.005
	case models.ActivityActive:
		rate += 0.01
	case models.ActivityVeryActive:
		rate += 0.02
	}
	if bmi < 22 {
		rate += 0.005
	} else if bmi > 30 {
		rate -= 0.01
	}
	if r.Age > 50 {
		rate -= 0.01
	}
	return clamp(rate, 0.11, 0.24)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
