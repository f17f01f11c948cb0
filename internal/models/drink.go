// ABOUTME: DrinkEvent model and Category enum for drink logging.
// ABOUTME: Standard units are computed once at creation and never recomputed.
package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Category represents the kind of drink consumed.
type Category string

const (
	CategoryBeer      Category = "beer"
	CategoryWine      Category = "wine"
	CategoryCocktail  Category = "cocktail"
	CategoryShot      Category = "shot"
	CategoryChampagne Category = "champagne"
	CategorySoft      Category = "soft"
	CategoryOther     Category = "other"
)

// AllCategories returns all valid drink categories.
var AllCategories = []Category{
	CategoryBeer, CategoryWine, CategoryCocktail, CategoryShot,
	CategoryChampagne, CategorySoft, CategoryOther,
}

// IsValidCategory checks if a string is a valid drink category.
func IsValidCategory(s string) bool {
	for _, c := range AllCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Serving holds a default serving size for a category.
type Serving struct {
	VolumeCl        float64
	StrengthPercent float64
}

// DefaultServings maps categories to typical serving sizes, used when the
// caller logs a drink without explicit volume/strength.
var DefaultServings = map[Category]Serving{
	CategoryBeer:      {VolumeCl: 33, StrengthPercent: 4.7},
	CategoryWine:      {VolumeCl: 15, StrengthPercent: 12.5},
	CategoryCocktail:  {VolumeCl: 25, StrengthPercent: 10},
	CategoryShot:      {VolumeCl: 4, StrengthPercent: 40},
	CategoryChampagne: {VolumeCl: 12, StrengthPercent: 12},
	CategorySoft:      {VolumeCl: 33, StrengthPercent: 0},
	CategoryOther:     {VolumeCl: 25, StrengthPercent: 5},
}

// DrinkEvent represents a single consumed drink (or a reusable template).
type DrinkEvent struct {
	ID              uuid.UUID
	UserID          string
	Category        Category
	VolumeCl        float64
	StrengthPercent float64
	Units           float64
	ConsumedAt      time.Time
	IsTemplate      bool
	Notes           *string
	CreatedAt       time.Time
}

// StandardUnits converts a serving volume (cl) and strength (% ABV) into
// standard alcohol units (1 unit = 10 g of pure ethanol). Pure alcohol
// volume in cl is vol*strength/100; times 10 (cl to ml) times 0.8 g/ml
// density gives grams; divided by 10 g/unit collapses to the closed form
// below. Any negative or non-finite input yields 0.
func StandardUnits(volumeCl, strengthPercent float64) float64 {
	if !isUsable(volumeCl) || !isUsable(strengthPercent) {
		return 0
	}
	return Round2(volumeCl * strengthPercent * 0.8 / 100)
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func isUsable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// NewDrink creates a new DrinkEvent with generated UUID and current
// timestamp. Units are derived here, once, from volume and strength.
func NewDrink(userID string, category Category, volumeCl, strengthPercent float64) *DrinkEvent {
	now := time.Now()
	return &DrinkEvent{
		ID:              uuid.New(),
		UserID:          userID,
		Category:        category,
		VolumeCl:        volumeCl,
		StrengthPercent: strengthPercent,
		Units:           StandardUnits(volumeCl, strengthPercent),
		ConsumedAt:      now,
		CreatedAt:       now,
	}
}

// WithConsumedAt sets a custom consumption timestamp.
func (d *DrinkEvent) WithConsumedAt(t time.Time) *DrinkEvent {
	d.ConsumedAt = t
	return d
}

// WithNotes sets notes on the drink.
func (d *DrinkEvent) WithNotes(notes string) *DrinkEvent {
	d.Notes = &notes
	return d
}

// AsTemplate marks the drink as a reusable preset. Templates are excluded
// from all session and statistics computations.
func (d *DrinkEvent) AsTemplate() *DrinkEvent {
	d.IsTemplate = true
	return d
}
