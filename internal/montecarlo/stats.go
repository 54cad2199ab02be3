package montecarlo

import (
	"github.com/movewise/relocation-readiness/pkg/mathutil"
)

// Statistics aggregates every sampled scenario of a run, not just the
// surfaced paths. All fields are zero when no scenarios were drawn.
type Statistics struct {
	AvgSalary           float64
	MaxSalary           float64
	MinSalary           float64
	AvgSavings          float64
	MaxSavings          float64
	MinSavings          float64
	AvgApprovalProb     float64
	MaxApprovalProb     float64
	VisaFundSuccessRate float64
	TotalSimulations    int
}

func computeStatistics(scenarios []Scenario) Statistics {
	stats := Statistics{TotalSimulations: len(scenarios)}
	if len(scenarios) == 0 {
		return stats
	}

	stats.MinSalary = scenarios[0].Salary
	stats.MaxSalary = scenarios[0].Salary
	stats.MinSavings = scenarios[0].TotalSavings12M
	stats.MaxSavings = scenarios[0].TotalSavings12M

	salarySum := 0.0
	savingsSum := 0.0
	probSum := 0.0
	visaMet := 0

	for _, s := range scenarios {
		salarySum += s.Salary
		savingsSum += s.TotalSavings12M
		probSum += s.ApprovalProb

		stats.MinSalary = mathutil.Min(stats.MinSalary, s.Salary)
		stats.MaxSalary = mathutil.Max(stats.MaxSalary, s.Salary)
		stats.MinSavings = mathutil.Min(stats.MinSavings, s.TotalSavings12M)
		stats.MaxSavings = mathutil.Max(stats.MaxSavings, s.TotalSavings12M)
		stats.MaxApprovalProb = mathutil.Max(stats.MaxApprovalProb, s.ApprovalProb)

		if s.VisaFundMet {
			visaMet++
		}
	}

	count := float64(len(scenarios))
	stats.AvgSalary = salarySum / count
	stats.AvgSavings = savingsSum / count
	stats.AvgApprovalProb = probSum / count
	stats.VisaFundSuccessRate = mathutil.CalculatePercentage(float64(visaMet), count)

	return stats
}
