package vtc

// Profile is a named bundle of spending-control thresholds. Profiles are
// immutable reference data; callers look them up by name.
type Profile struct {
	Name                   string
	MaxInternational       float64
	MaxSingleTransaction   float64
	DailyLimit             float64
	BlockHighRiskMerchants bool
	AllowATM               bool
	MaxATMWithdrawal       float64
	Description            string
}

// Canonical profile names.
const (
	ProfileStandard     = "standard"
	ProfileConservative = "conservative"
	ProfileFlexible     = "flexible"
)

var profiles = map[string]Profile{
	ProfileStandard: {
		Name:                   ProfileStandard,
		MaxInternational:       500,
		MaxSingleTransaction:   1000,
		DailyLimit:             2500,
		BlockHighRiskMerchants: true,
		AllowATM:               true,
		MaxATMWithdrawal:       500,
		Description:            "Standard spending controls for everyday transactions",
	},
	ProfileConservative: {
		Name:                   ProfileConservative,
		MaxInternational:       200,
		MaxSingleTransaction:   500,
		DailyLimit:             1000,
		BlockHighRiskMerchants: true,
		AllowATM:               true,
		MaxATMWithdrawal:       200,
		Description:            "Strict controls for budget-conscious travelers",
	},
	ProfileFlexible: {
		Name:                   ProfileFlexible,
		MaxInternational:       2000,
		MaxSingleTransaction:   3000,
		DailyLimit:             5000,
		BlockHighRiskMerchants: false,
		AllowATM:               true,
		MaxATMWithdrawal:       1000,
		Description:            "Relaxed controls for established expats",
	},
}

// LookupProfile returns the profile registered under name. Unknown names
// fall back silently to the standard profile; callers that want to surface
// the substitution should warn during configuration validation instead.
func LookupProfile(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	return profiles[ProfileStandard]
}

// ProfileNames lists the canonical profile names.
func ProfileNames() []string {
	return []string{ProfileConservative, ProfileStandard, ProfileFlexible}
}
