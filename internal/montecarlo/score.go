package montecarlo

import (
	"github.com/movewise/relocation-readiness/pkg/constants"
	"github.com/movewise/relocation-readiness/pkg/mathutil"
)

// sentinelRatio stands in for salary/expenses when expenses are zero, so
// degenerate inputs score as comfortably solvent instead of dividing by zero.
const sentinelRatio = 2.0

// approvalProbability estimates the chance a scenario's finances satisfy a
// relocation review. Base probability grows with the salary/expense ratio up
// to 0.75, savings milestones and a healthy ratio add bonuses, and the final
// value is clamped to [0.10, 0.98].
func approvalProbability(salary, expenses, savings float64) float64 {
	ratio := sentinelRatio
	if expenses > 0 {
		ratio = salary / expenses
	}

	prob := mathutil.Min(0.5+(ratio-1)*0.25, 0.75)

	switch {
	case savings >= 15000:
		prob += 0.15
	case savings >= constants.VisaFundTarget:
		prob += 0.10
	case savings >= 5000:
		prob += 0.05
	}

	if ratio >= 1.5 {
		prob += 0.05
	}

	return mathutil.Clamp(prob, 0.10, 0.98)
}

// stabilityScore rates a scenario's financial resilience on a 0-100 scale:
// 50 base, up to 20 from the salary/expense ratio, up to 20 from the savings
// rate, and 10 for clearing 500 in monthly savings.
func stabilityScore(salary, expenses, monthlySavings float64) float64 {
	score := 50.0

	ratio := sentinelRatio
	if expenses > 0 {
		ratio = salary / expenses
	}
	score += mathutil.Min(20, (ratio-1)*20)

	savingsRate := 0.0
	if salary > 0 {
		savingsRate = monthlySavings / salary
	}
	score += mathutil.Min(20, savingsRate*100)

	if monthlySavings >= 500 {
		score += 10
	}

	return mathutil.Clamp(score, 0, 100)
}
