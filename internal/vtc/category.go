package vtc

import "strings"

// Category identifies the spending category of a transaction.
type Category string

// Transaction categories recognized by the evaluator. Free-form input that
// does not match any of these resolves to CategoryUnknown.
const (
	CategoryHousing       Category = "housing"
	CategoryGroceries     Category = "groceries"
	CategoryUtilities     Category = "utilities"
	CategoryTransport     Category = "transport"
	CategoryDining        Category = "dining"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryElectronics   Category = "electronics"
	CategoryTravel        Category = "travel"
	CategoryATM           Category = "atm"
	CategoryHealthcare    Category = "healthcare"
	CategoryEducation     Category = "education"
	CategoryUnknown       Category = "unknown"
)

// RiskLevel is the coarse risk tier attached to a category. The high tier
// feeds the high-risk-merchant rule; low and medium are display-only.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Location distinguishes domestic from international transactions.
type Location string

const (
	LocationDomestic      Location = "domestic"
	LocationInternational Location = "international"
)

// categoryInfo carries the static display and risk attributes of a category.
type categoryInfo struct {
	Risk RiskLevel
	Icon string
}

var categoryTable = map[Category]categoryInfo{
	CategoryHousing:       {RiskLow, "🏠"},
	CategoryGroceries:     {RiskLow, "🛒"},
	CategoryUtilities:     {RiskLow, "💡"},
	CategoryTransport:     {RiskLow, "🚌"},
	CategoryDining:        {RiskMedium, "🍽️"},
	CategoryEntertainment: {RiskMedium, "🎬"},
	CategoryShopping:      {RiskMedium, "🛍️"},
	CategoryElectronics:   {RiskHigh, "💻"},
	CategoryTravel:        {RiskHigh, "✈️"},
	CategoryATM:           {RiskLow, "🏧"},
	CategoryHealthcare:    {RiskLow, "🏥"},
	CategoryEducation:     {RiskLow, "📚"},
}

// unknownCategoryInfo is the fallback for categories outside the table.
var unknownCategoryInfo = categoryInfo{RiskMedium, "💳"}

// ParseCategory maps free-form category text onto the typed enumeration.
// "rent" is accepted as an alias for housing; anything unrecognized,
// including the empty string, resolves to CategoryUnknown.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "rent" {
		return CategoryHousing
	}
	if _, ok := categoryTable[c]; ok {
		return c
	}
	return CategoryUnknown
}

// ParseLocation maps free-form location text onto the typed enumeration.
// Anything other than "international" is treated as domestic.
func ParseLocation(s string) Location {
	if Location(strings.ToLower(strings.TrimSpace(s))) == LocationInternational {
		return LocationInternational
	}
	return LocationDomestic
}

// Info returns the risk tier and display icon for a category.
func (c Category) Info() (RiskLevel, string) {
	if info, ok := categoryTable[c]; ok {
		return info.Risk, info.Icon
	}
	return unknownCategoryInfo.Risk, unknownCategoryInfo.Icon
}
