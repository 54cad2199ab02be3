package montecarlo

import (
	"math"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

func seedOf(v int64) *int64 {
	return &v
}

func TestRunDeterministicWithSeed(t *testing.T) {
	logger := zap.NewNop()
	input := Input{
		BaseSalary:   2000,
		BaseExpenses: 1500,
		Levers:       DefaultLevers(),
		NumSamples:   100,
		Seed:         seedOf(42),
	}

	first := Run(logger, input)
	second := Run(logger, input)

	if !reflect.DeepEqual(first, second) {
		t.Error("two runs with the same seed produced different bundles")
	}
	if len(first.AllScenarios) != 100 {
		t.Errorf("AllScenarios = %d, expected 100", len(first.AllScenarios))
	}
}

func TestRunDifferentSeedsDiverge(t *testing.T) {
	logger := zap.NewNop()
	input := Input{BaseSalary: 2000, BaseExpenses: 1500, NumSamples: 100, Seed: seedOf(1)}
	other := input
	other.Seed = seedOf(2)

	first := Run(logger, input)
	second := Run(logger, other)

	if reflect.DeepEqual(first.AllScenarios, second.AllScenarios) {
		t.Error("different seeds produced identical scenario lists")
	}
}

func TestRunZeroSamples(t *testing.T) {
	logger := zap.NewNop()

	for _, samples := range []int{0, -5} {
		bundle := Run(logger, Input{BaseSalary: 2000, BaseExpenses: 1500, NumSamples: samples})

		if len(bundle.AllScenarios) != 0 {
			t.Errorf("NumSamples=%d: AllScenarios = %d, expected 0", samples, len(bundle.AllScenarios))
		}
		if len(bundle.TopPaths) != 0 {
			t.Errorf("NumSamples=%d: TopPaths = %d, expected 0", samples, len(bundle.TopPaths))
		}
		if bundle.Statistics.TotalSimulations != 0 {
			t.Errorf("NumSamples=%d: TotalSimulations = %d, expected 0", samples, bundle.Statistics.TotalSimulations)
		}
		if bundle.Statistics.VisaFundSuccessRate != 0 {
			t.Errorf("NumSamples=%d: VisaFundSuccessRate = %.2f, expected 0", samples, bundle.Statistics.VisaFundSuccessRate)
		}
	}
}

func TestRunBaseScenario(t *testing.T) {
	logger := zap.NewNop()
	bundle := Run(logger, Input{BaseSalary: 2000, BaseExpenses: 1500, NumSamples: 0})

	base := bundle.BaseScenario
	if base.Salary != 2000 || base.Expenses != 1500 {
		t.Errorf("base scenario = %+v, expected the unmodified inputs", base)
	}
	if base.MonthlySavings != 500 {
		t.Errorf("base monthly savings = %.2f, expected 500", base.MonthlySavings)
	}
	expected := approvalProbability(2000, 1500, 6000)
	if base.ApprovalProb != expected {
		t.Errorf("base approval prob = %.4f, expected %.4f", base.ApprovalProb, expected)
	}
}

func TestRunWorkedExample(t *testing.T) {
	logger := zap.NewNop()
	// Single-value candidate sets pin every draw to the same lever triple.
	bundle := Run(logger, Input{
		BaseSalary:   4000,
		BaseExpenses: 2500,
		Levers: Levers{
			SalaryBoosts:      []float64{0.25},
			ExpenseReductions: []float64{0.2},
			SideIncomes:       []float64{500},
		},
		NumSamples: 5,
		Seed:       seedOf(7),
	})

	if len(bundle.AllScenarios) != 5 {
		t.Fatalf("AllScenarios = %d, expected 5", len(bundle.AllScenarios))
	}
	s := bundle.AllScenarios[0]
	if s.Salary != 5500 {
		t.Errorf("effective salary = %.2f, expected 5500", s.Salary)
	}
	if s.Expenses != 2000 {
		t.Errorf("effective expenses = %.2f, expected 2000", s.Expenses)
	}
	if s.MonthlySavings != 3500 {
		t.Errorf("monthly savings = %.2f, expected 3500", s.MonthlySavings)
	}
	if s.TotalSavings12M != 42000 {
		t.Errorf("12-month savings = %.2f, expected 42000", s.TotalSavings12M)
	}
	if !s.VisaFundMet {
		t.Error("VisaFundMet = false, expected true at 42000")
	}

	// Identical salaries collapse into a single path.
	if len(bundle.TopPaths) != 1 {
		t.Fatalf("TopPaths = %d, expected 1 after dedup", len(bundle.TopPaths))
	}
	if bundle.TopPaths[0].Name != "Career Accelerator Path" {
		t.Errorf("path name = %q, expected Career Accelerator Path", bundle.TopPaths[0].Name)
	}
}

func TestRunScoreBounds(t *testing.T) {
	logger := zap.NewNop()
	bundle := Run(logger, Input{
		BaseSalary:   3000,
		BaseExpenses: 2000,
		NumSamples:   200,
		Seed:         seedOf(99),
	})

	for i, s := range bundle.AllScenarios {
		if s.ApprovalProb < 0.10 || s.ApprovalProb > 0.98 {
			t.Errorf("scenario %d: approval prob %.4f outside [0.10, 0.98]", i, s.ApprovalProb)
		}
		if s.StabilityScore < 0 || s.StabilityScore > 100 {
			t.Errorf("scenario %d: stability score %.2f outside [0, 100]", i, s.StabilityScore)
		}
	}
}

func TestRunDistinctPathSalarySeparation(t *testing.T) {
	logger := zap.NewNop()
	bundle := Run(logger, Input{
		BaseSalary:   3000,
		BaseExpenses: 2000,
		NumSamples:   200,
		Seed:         seedOf(5),
	})

	paths := bundle.TopPaths
	if len(paths) == 0 {
		t.Fatal("expected at least one path")
	}
	if len(paths) > 3 {
		t.Errorf("TopPaths = %d, expected at most 3", len(paths))
	}
	for i := 0; i < len(paths); i++ {
		for j := i + 1; j < len(paths); j++ {
			gap := math.Abs(paths[i].Salary - paths[j].Salary)
			if gap < 200 {
				t.Errorf("paths %d and %d separated by %.2f, expected >= 200", i, j, gap)
			}
		}
	}
	// Paths are ranked by approval probability.
	for i := 1; i < len(paths); i++ {
		if paths[i].ApprovalProb > paths[i-1].ApprovalProb {
			t.Errorf("path %d has higher probability than path %d", i, i-1)
		}
	}
}

func TestLeversWithDefaults(t *testing.T) {
	partial := Levers{SalaryBoosts: []float64{0.5}}
	filled := partial.withDefaults()

	if !reflect.DeepEqual(filled.SalaryBoosts, []float64{0.5}) {
		t.Errorf("SalaryBoosts = %v, expected caller's values preserved", filled.SalaryBoosts)
	}
	defaults := DefaultLevers()
	if !reflect.DeepEqual(filled.ExpenseReductions, defaults.ExpenseReductions) {
		t.Errorf("ExpenseReductions = %v, expected defaults", filled.ExpenseReductions)
	}
	if !reflect.DeepEqual(filled.SideIncomes, defaults.SideIncomes) {
		t.Errorf("SideIncomes = %v, expected defaults", filled.SideIncomes)
	}
}
