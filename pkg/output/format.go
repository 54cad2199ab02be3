// Package output provides utilities for formatting and displaying
// evaluation and simulation results.
package output

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/movewise/relocation-readiness/internal/montecarlo"
	"github.com/movewise/relocation-readiness/internal/vtc"
)

// PrettyEvaluation outputs a human-readable transaction feed with the
// summary and recommendations below it.
func PrettyEvaluation(results []vtc.Result, summary vtc.Summary, recommendations []string) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Transaction control simulation ---\n")
	fmt.Printf("Status   | Amount     | Transaction                    | Reason\n")
	fmt.Printf("______   | ______     | ___________                    | ______\n")
	for _, r := range results {
		_, _ = p.Printf("%-8s | €%-9.2f | %s %-28s | %s\n", r.Status, r.Amount, r.Icon, r.Description, r.Reason)
	}

	fmt.Printf("\n--- Summary ---\n")
	_, _ = p.Printf("Transactions: %d (%d approved, %d declined, %d flagged)\n",
		summary.TotalTransactions, summary.ApprovedCount, summary.DeclinedCount, summary.FlaggedCount)
	_, _ = p.Printf("Approval rate: %.0f%%\n", summary.ApprovalRate)
	_, _ = p.Printf("Approved: €%.2f | Declined: €%.2f | Potential savings: €%.2f\n",
		summary.TotalApproved, summary.TotalDeclined, summary.PotentialSavings)

	if len(summary.CategoryBreakdown) > 0 {
		fmt.Printf("\nCategory breakdown:\n")
		categories := make([]string, 0, len(summary.CategoryBreakdown))
		for category := range summary.CategoryBreakdown {
			categories = append(categories, string(category))
		}
		sort.Strings(categories)
		for _, category := range categories {
			amounts := summary.CategoryBreakdown[vtc.Category(category)]
			_, _ = p.Printf("  %-13s approved €%.2f, declined €%.2f of €%.2f\n",
				category, amounts.Approved, amounts.Declined, amounts.Total)
		}
	}

	fmt.Printf("\nRecommendations:\n")
	for _, rec := range recommendations {
		fmt.Printf("  - %s\n", rec)
	}
}

// CsvEvaluation outputs the evaluated feed in comma-separated value format.
func CsvEvaluation(results []vtc.Result) {
	fmt.Printf(`"transaction","amount","category","location","status","reason","savings_impact","running_daily_total"`)
	fmt.Printf("\n")
	for _, r := range results {
		fmt.Printf(`"%s","%.2f","%s","%s","%s","%s","%.2f","%.2f"`,
			r.Description, r.Amount, r.Category, r.Location, r.Status, r.Reason, r.SavingsImpact, r.RunningDailyTotal)
		fmt.Printf("\n")
	}
}

// PrettySimulation outputs the ranked paths, the aggregate statistics, and
// the comparative narrative for a simulation run.
func PrettySimulation(bundle montecarlo.Bundle) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Alternative paths (12-month projection) ---\n")
	for i, path := range bundle.TopPaths {
		_, _ = p.Printf("%d. %s: %s\n", i+1, path.Name, path.Description)
		_, _ = p.Printf("   salary €%.2f | savings €%.2f | success %.0f%% | stability %.0f | visa fund met: %t\n",
			path.Salary, path.TotalSavings12M, path.ApprovalProb*100, path.StabilityScore, path.VisaFundMet)
	}
	if len(bundle.TopPaths) == 0 {
		fmt.Printf("(no scenarios sampled)\n")
	}

	stats := bundle.Statistics
	fmt.Printf("\n--- Statistics over %d simulations ---\n", stats.TotalSimulations)
	_, _ = p.Printf("Salary   avg €%.2f (min €%.2f, max €%.2f)\n", stats.AvgSalary, stats.MinSalary, stats.MaxSalary)
	_, _ = p.Printf("Savings  avg €%.2f (min €%.2f, max €%.2f)\n", stats.AvgSavings, stats.MinSavings, stats.MaxSavings)
	_, _ = p.Printf("Success  avg %.0f%% (max %.0f%%)\n", stats.AvgApprovalProb*100, stats.MaxApprovalProb*100)
	_, _ = p.Printf("Visa fund met in %.0f%% of simulations\n", stats.VisaFundSuccessRate)

	base := bundle.BaseScenario
	_, _ = p.Printf("\nBase scenario: salary €%.2f, expenses €%.2f, monthly savings €%.2f, success %.0f%%\n",
		base.Salary, base.Expenses, base.MonthlySavings, base.ApprovalProb*100)

	fmt.Printf("\n%s\n", montecarlo.ComparePaths(bundle.TopPaths))
}

// CsvSimulation outputs every sampled scenario in comma-separated value
// format, in draw order.
func CsvSimulation(bundle montecarlo.Bundle) {
	fmt.Printf(`"salary","expenses","monthly_savings","total_savings_12m","approval_prob","stability_score","visa_fund_met","salary_boost","expense_cut","side_income"`)
	fmt.Printf("\n")
	for _, s := range bundle.AllScenarios {
		fmt.Printf(`"%.2f","%.2f","%.2f","%.2f","%.4f","%.2f","%t","%.2f","%.2f","%.2f"`,
			s.Salary, s.Expenses, s.MonthlySavings, s.TotalSavings12M, s.ApprovalProb, s.StabilityScore, s.VisaFundMet, s.SalaryBoost, s.ExpenseCut, s.SideIncome)
		fmt.Printf("\n")
	}
}
