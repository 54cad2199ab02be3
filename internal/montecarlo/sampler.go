// Package montecarlo projects a distribution of 12-month savings outcomes by
// randomly combining career, expense, and side-income levers, then ranks and
// deduplicates the draws into a small set of named alternative paths.
package montecarlo

import (
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/movewise/relocation-readiness/pkg/constants"
)

// Levers holds the discrete candidate values each simulation draw samples
// from, one value per lever per draw.
type Levers struct {
	SalaryBoosts      []float64
	ExpenseReductions []float64
	SideIncomes       []float64
}

// DefaultLevers returns the standard candidate sets.
func DefaultLevers() Levers {
	return Levers{
		SalaryBoosts:      []float64{0, 0.15, 0.25},
		ExpenseReductions: []float64{0, 0.1, 0.2},
		SideIncomes:       []float64{0, 200, 500},
	}
}

// withDefaults fills any empty candidate set from DefaultLevers so a partial
// configuration never panics an index lookup.
func (l Levers) withDefaults() Levers {
	defaults := DefaultLevers()
	if len(l.SalaryBoosts) == 0 {
		l.SalaryBoosts = defaults.SalaryBoosts
	}
	if len(l.ExpenseReductions) == 0 {
		l.ExpenseReductions = defaults.ExpenseReductions
	}
	if len(l.SideIncomes) == 0 {
		l.SideIncomes = defaults.SideIncomes
	}
	return l
}

// Scenario is one Monte Carlo draw together with its derived outcome metrics.
type Scenario struct {
	Salary          float64
	Expenses        float64
	MonthlySavings  float64
	TotalSavings12M float64
	ApprovalProb    float64
	StabilityScore  float64
	VisaFundMet     bool
	SalaryBoost     float64
	ExpenseCut      float64
	SideIncome      float64
}

// BaseScenario is the caller's unmodified situation, kept alongside the
// sampled scenarios so comparisons have an anchor.
type BaseScenario struct {
	Salary         float64
	Expenses       float64
	MonthlySavings float64
	ApprovalProb   float64
}

// Bundle is the full output of a simulation run.
type Bundle struct {
	TopPaths     []Path
	AllScenarios []Scenario
	Statistics   Statistics
	BaseScenario BaseScenario
}

// Input holds the parameters of one simulation run. NumSamples of zero or
// below yields an empty, zero-valued Bundle; callers wanting the standard
// sample count use constants.DefaultNumSamples. A nil Seed draws a
// time-based seed; a non-nil Seed makes the run fully reproducible.
type Input struct {
	BaseSalary   float64
	BaseExpenses float64
	Levers       Levers
	NumSamples   int
	Seed         *int64
}

// Run executes the simulation and returns ranked paths, every sampled
// scenario in draw order, and aggregate statistics. The random generator is
// constructed per call; no state survives between runs.
func Run(logger *zap.Logger, input Input) Bundle {
	if logger == nil {
		logger = zap.NewNop()
	}

	seed := time.Now().UnixNano()
	if input.Seed != nil {
		seed = *input.Seed
	}
	rng := rand.New(rand.NewSource(seed))
	levers := input.Levers.withDefaults()

	scenarios := make([]Scenario, 0, max(input.NumSamples, 0))
	for i := 0; i < input.NumSamples; i++ {
		boost := choice(rng, levers.SalaryBoosts)
		cut := choice(rng, levers.ExpenseReductions)
		side := choice(rng, levers.SideIncomes)
		scenarios = append(scenarios, deriveScenario(input.BaseSalary, input.BaseExpenses, boost, cut, side))
	}

	// Rank a copy so AllScenarios keeps draw order; ties in probability are
	// broken by sampling order via the stable sort.
	ranked := make([]Scenario, len(scenarios))
	copy(ranked, scenarios)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ApprovalProb > ranked[j].ApprovalProb
	})

	bundle := Bundle{
		TopPaths:     distinctTopPaths(ranked, constants.DefaultTopPaths),
		AllScenarios: scenarios,
		Statistics:   computeStatistics(scenarios),
		BaseScenario: BaseScenario{
			Salary:         input.BaseSalary,
			Expenses:       input.BaseExpenses,
			MonthlySavings: input.BaseSalary - input.BaseExpenses,
			ApprovalProb: approvalProbability(input.BaseSalary, input.BaseExpenses,
				(input.BaseSalary-input.BaseExpenses)*constants.MonthsPerYear),
		},
	}

	logger.Debug("simulation run complete",
		zap.String("op", "montecarlo.Run"),
		zap.Int("samples", len(scenarios)),
		zap.Int("topPaths", len(bundle.TopPaths)),
		zap.Int64("seed", seed),
	)

	return bundle
}

// choice samples one value uniformly at random, with replacement.
func choice(rng *rand.Rand, values []float64) float64 {
	return values[rng.Intn(len(values))]
}

// deriveScenario applies one lever combination to the base salary/expenses
// pair and computes all outcome metrics.
func deriveScenario(baseSalary, baseExpenses, boost, cut, side float64) Scenario {
	salary := baseSalary*(1+boost) + side
	expenses := baseExpenses * (1 - cut)
	monthly := salary - expenses
	total := monthly * constants.MonthsPerYear

	return Scenario{
		Salary:          salary,
		Expenses:        expenses,
		MonthlySavings:  monthly,
		TotalSavings12M: total,
		ApprovalProb:    approvalProbability(salary, expenses, total),
		StabilityScore:  stabilityScore(salary, expenses, monthly),
		VisaFundMet:     total >= constants.VisaFundTarget,
		SalaryBoost:     boost,
		ExpenseCut:      cut,
		SideIncome:      side,
	}
}
