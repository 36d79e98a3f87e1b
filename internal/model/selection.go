// Package model defines domain types for childcare cost estimation.
package model

// CareType is the category of childcare arrangement.
type CareType string

const (
	CareCenterBased CareType = "center-based"
	CareFamilyCare  CareType = "family-care"
)

// CareTypes lists all supported care types in display order.
var CareTypes = []CareType{CareCenterBased, CareFamilyCare}

// Label returns a human-readable name for the care type.
func (c CareType) Label() string {
	switch c {
	case CareCenterBased:
		return "Center Based"
	case CareFamilyCare:
		return "Family Care"
	default:
		return string(c)
	}
}

// PriceBracket is a coarse cost tier relative to the state average.
type PriceBracket string

const (
	BracketLow     PriceBracket = "low"
	BracketAverage PriceBracket = "average"
	BracketHigh    PriceBracket = "high"
)

// Brackets lists all price brackets from cheapest to most expensive.
var Brackets = []PriceBracket{BracketLow, BracketAverage, BracketHigh}

// AgeGroup is the tuition tier a child falls into by age.
type AgeGroup string

const (
	AgeInfant    AgeGroup = "infant"    // under 12 months
	AgeToddler   AgeGroup = "toddler"   // 12-47 months
	AgePreschool AgeGroup = "preschool" // 48 months and up
)

// AgeGroups lists all age groups youngest first.
var AgeGroups = []AgeGroup{AgeInfant, AgeToddler, AgePreschool}

// AgeGroupFor returns the tuition tier for a child of the given age in months.
func AgeGroupFor(ageMonths int) AgeGroup {
	switch {
	case ageMonths < 12:
		return AgeInfant
	case ageMonths < 48:
		return AgeToddler
	default:
		return AgePreschool
	}
}

// UserSelection holds one set of estimator inputs. Created per interaction,
// never persisted.
type UserSelection struct {
	State      string
	CareType   CareType
	Bracket    PriceBracket
	Multiplier float64 // user cost expectation vs the state average
	Months     int     // projection duration
	Children   int     // used only by the savings adjustment
}
