package vtc

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Category
	}{
		{"Known category", "groceries", CategoryGroceries},
		{"Rent alias maps to housing", "rent", CategoryHousing},
		{"Uppercase normalized", "TRAVEL", CategoryTravel},
		{"Whitespace trimmed", "  dining ", CategoryDining},
		{"Unknown text", "crypto", CategoryUnknown},
		{"Empty string", "", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCategory(tt.input); got != tt.expected {
				t.Errorf("ParseCategory(%q) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Location
	}{
		{"International", "international", LocationInternational},
		{"Domestic", "domestic", LocationDomestic},
		{"Unknown defaults domestic", "offshore", LocationDomestic},
		{"Empty defaults domestic", "", LocationDomestic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLocation(tt.input); got != tt.expected {
				t.Errorf("ParseLocation(%q) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCategoryRiskTiers(t *testing.T) {
	tests := []struct {
		category Category
		risk     RiskLevel
	}{
		{CategoryHousing, RiskLow},
		{CategoryGroceries, RiskLow},
		{CategoryATM, RiskLow},
		{CategoryDining, RiskMedium},
		{CategoryShopping, RiskMedium},
		{CategoryElectronics, RiskHigh},
		{CategoryTravel, RiskHigh},
		{CategoryUnknown, RiskMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			risk, icon := tt.category.Info()
			if risk != tt.risk {
				t.Errorf("%s risk = %s, expected %s", tt.category, risk, tt.risk)
			}
			if icon == "" {
				t.Errorf("%s has no icon", tt.category)
			}
		})
	}
}

func TestLookupProfile(t *testing.T) {
	tests := []struct {
		name             string
		lookup           string
		expectedName     string
		maxInternational float64
	}{
		{"Standard", "standard", ProfileStandard, 500},
		{"Conservative", "conservative", ProfileConservative, 200},
		{"Flexible", "flexible", ProfileFlexible, 2000},
		{"Unknown falls back to standard", "maximal", ProfileStandard, 500},
		{"Empty falls back to standard", "", ProfileStandard, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := LookupProfile(tt.lookup)
			if p.Name != tt.expectedName {
				t.Errorf("LookupProfile(%q).Name = %s, expected %s", tt.lookup, p.Name, tt.expectedName)
			}
			if p.MaxInternational != tt.maxInternational {
				t.Errorf("LookupProfile(%q).MaxInternational = %.0f, expected %.0f", tt.lookup, p.MaxInternational, tt.maxInternational)
			}
		})
	}
}
