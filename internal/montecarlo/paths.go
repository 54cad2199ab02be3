package montecarlo

import (
	"fmt"
	"math"
	"strings"

	"github.com/movewise/relocation-readiness/pkg/constants"
)

// Path is a distinct, top-ranked scenario promoted into a named strategy.
type Path struct {
	Scenario
	Name        string
	Description string
}

// distinctTopPaths walks the probability-ranked scenarios and greedily
// selects up to n whose effective salary differs by at least
// constants.DistinctSalaryGap from every scenario already selected.
// Distinctness is keyed on salary alone: two scenarios with the same salary
// but different lever mixes are duplicates and only the higher-ranked one
// survives.
func distinctTopPaths(ranked []Scenario, n int) []Path {
	var paths []Path

	for _, scenario := range ranked {
		distinct := true
		for _, existing := range paths {
			if math.Abs(scenario.Salary-existing.Salary) < constants.DistinctSalaryGap {
				distinct = false
				break
			}
		}
		if !distinct {
			continue
		}

		paths = append(paths, Path{
			Scenario:    scenario,
			Name:        pathName(scenario),
			Description: pathDescription(scenario),
		})
		if len(paths) >= n {
			break
		}
	}

	return paths
}

// pathName labels a path after its dominant lever; first match wins.
func pathName(s Scenario) string {
	switch {
	case s.SalaryBoost >= 0.2:
		return "Career Accelerator Path"
	case s.ExpenseCut >= 0.15:
		return "Frugal Pioneer Path"
	case s.SideIncome >= 400:
		return "Hustle Builder Path"
	case s.SalaryBoost > 0 && s.ExpenseCut > 0:
		return "Balanced Growth Path"
	default:
		return "Steady Progress Path"
	}
}

// pathDescription concatenates the materially active levers.
func pathDescription(s Scenario) string {
	var parts []string

	if s.SalaryBoost >= 0.15 {
		parts = append(parts, fmt.Sprintf("+%.0f%% salary through upskilling", s.SalaryBoost*100))
	}
	if s.ExpenseCut >= 0.1 {
		parts = append(parts, fmt.Sprintf("%.0f%% expense reduction", s.ExpenseCut*100))
	}
	if s.SideIncome > 0 {
		parts = append(parts, fmt.Sprintf("€%.0f side income", s.SideIncome))
	}

	if len(parts) == 0 {
		return "Current trajectory maintained"
	}
	return strings.Join(parts, " + ")
}

// ComparePaths builds a short narrative contrasting the top-ranked path with
// the runner-up on approval odds and annual savings.
func ComparePaths(paths []Path) string {
	if len(paths) < 2 {
		return "Single path analyzed."
	}

	best := paths[0]
	second := paths[1]
	probDiff := (best.ApprovalProb - second.ApprovalProb) * 100
	savingsDiff := best.TotalSavings12M - second.TotalSavings12M

	direction := "more"
	if savingsDiff <= 0 {
		direction = "less"
	}

	return fmt.Sprintf("The %s offers the highest success probability at %.0f%%. "+
		"Compared to %s, it provides %.0f%% better approval odds and €%.0f %s in annual savings.",
		best.Name, best.ApprovalProb*100, second.Name, probDiff, math.Abs(savingsDiff), direction)
}
