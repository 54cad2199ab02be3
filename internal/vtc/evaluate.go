// Package vtc simulates Visa-style transaction controls: it evaluates a
// planned sequence of transactions against a named spending-control profile
// and reports which would be approved, declined, or flagged.
package vtc

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/movewise/relocation-readiness/pkg/mathutil"
)

// Status is the verdict for a single evaluated transaction.
type Status string

const (
	StatusApproved Status = "Approved"
	StatusDeclined Status = "Declined"

	// StatusFlagged marks a high-value transaction in a high-risk category.
	// Flagged transactions neither advance the running daily total nor count
	// toward protected savings.
	StatusFlagged Status = "Flagged"
)

// Transaction is one planned spend event. Amount must be non-negative.
// Zero-value fields are defaulted during evaluation: empty description
// becomes a placeholder, empty category resolves to unknown, empty location
// to domestic.
type Transaction struct {
	Description string
	Amount      float64
	Category    Category
	Location    Location
}

// Result is the evaluator's verdict for one transaction, 1:1 and in order
// with the input sequence.
type Result struct {
	Description string
	Amount      float64
	Category    Category
	Location    Location
	Status      Status
	Reason      string
	// Action carries optional advisory text for declines and flags.
	Action string
	// SavingsImpact is the amount protected by a decline; 0 for approvals
	// and flagged transactions.
	SavingsImpact float64
	RiskLevel     RiskLevel
	Icon          string
	// RunningDailyTotal is the accumulated approved spend after this
	// transaction was processed.
	RunningDailyTotal float64
}

// CategoryAmounts aggregates approved vs. declined amounts for one category.
type CategoryAmounts struct {
	Approved float64
	Declined float64
	Total    float64
}

// Summary aggregates an evaluated sequence.
type Summary struct {
	TotalTransactions int
	ApprovedCount     int
	DeclinedCount     int
	FlaggedCount      int
	// ApprovalRate is approved/total as a percentage, 0 when total is 0.
	ApprovalRate      float64
	TotalApproved     float64
	TotalDeclined     float64
	PotentialSavings  float64
	CategoryBreakdown map[Category]CategoryAmounts
}

// Evaluate runs every transaction through the profile's layered rules in
// input order, threading a running daily-spend total that advances only on
// approvals. startingDailySpent seeds the running total with spend already
// made today. Unknown profile names fall back to the standard profile.
func Evaluate(logger *zap.Logger, transactions []Transaction, profileName string, startingDailySpent float64) []Result {
	if logger == nil {
		logger = zap.NewNop()
	}
	profile := LookupProfile(profileName)
	if profile.Name != profileName {
		logger.Debug("unknown profile name, falling back to standard",
			zap.String("op", "vtc.Evaluate"),
			zap.String("requested", profileName),
		)
	}

	results := make([]Result, 0, len(transactions))
	runningDailyTotal := startingDailySpent

	for _, tx := range transactions {
		desc := tx.Description
		if desc == "" {
			desc = "Unknown Transaction"
		}
		category := tx.Category
		if category == "" {
			category = CategoryUnknown
		}
		location := tx.Location
		if location == "" {
			location = LocationDomestic
		}
		risk, icon := category.Info()

		status := StatusApproved
		reason := "Transaction approved"
		action := ""
		savingsImpact := 0.0

		switch {
		case location == LocationInternational && tx.Amount > profile.MaxInternational:
			status = StatusDeclined
			reason = fmt.Sprintf("Exceeds international limit (€%.0f)", profile.MaxInternational)
			action = "Blocked this international transaction to protect your budget"
			savingsImpact = tx.Amount

		case tx.Amount > profile.MaxSingleTransaction:
			status = StatusDeclined
			reason = fmt.Sprintf("Exceeds single transaction limit (€%.0f)", profile.MaxSingleTransaction)
			action = "Blocked this large purchase; consider splitting or pre-approving"
			savingsImpact = tx.Amount

		case runningDailyTotal+tx.Amount > profile.DailyLimit:
			status = StatusDeclined
			reason = fmt.Sprintf("Would exceed daily limit (€%.0f)", profile.DailyLimit)
			action = "Daily spending limit reached; transaction blocked for budget safety"
			savingsImpact = tx.Amount

		case category == CategoryATM:
			if !profile.AllowATM {
				status = StatusDeclined
				reason = "ATM withdrawals blocked by control settings"
				action = "ATM access disabled in your profile"
				savingsImpact = tx.Amount
			} else if tx.Amount > profile.MaxATMWithdrawal {
				status = StatusDeclined
				reason = fmt.Sprintf("Exceeds ATM withdrawal limit (€%.0f)", profile.MaxATMWithdrawal)
				action = "ATM withdrawal limit exceeded"
				savingsImpact = tx.Amount
			}

		case risk == RiskHigh && profile.BlockHighRiskMerchants:
			if tx.Amount > profile.MaxInternational*0.8 {
				status = StatusFlagged
				reason = "High-value transaction in high-risk category"
				action = "Transaction flagged for review; consider using a different payment method"
			}
		}

		if status == StatusApproved {
			runningDailyTotal += tx.Amount
		}

		results = append(results, Result{
			Description:       desc,
			Amount:            tx.Amount,
			Category:          category,
			Location:          location,
			Status:            status,
			Reason:            reason,
			Action:            action,
			SavingsImpact:     savingsImpact,
			RiskLevel:         risk,
			Icon:              icon,
			RunningDailyTotal: runningDailyTotal,
		})
	}

	logger.Debug("evaluated transaction sequence",
		zap.String("op", "vtc.Evaluate"),
		zap.String("profile", profile.Name),
		zap.Int("transactions", len(results)),
		zap.Float64("runningDailyTotal", runningDailyTotal),
	)

	return results
}

// Summarize aggregates the evaluated sequence into counts, totals, the
// approval rate, and a per-category breakdown. Flagged transactions count
// into the category breakdown's declined bucket but not into the declined
// amount totals or potential savings.
func Summarize(results []Result) Summary {
	summary := Summary{
		TotalTransactions: len(results),
		CategoryBreakdown: make(map[Category]CategoryAmounts),
	}

	for _, r := range results {
		breakdown := summary.CategoryBreakdown[r.Category]
		breakdown.Total += r.Amount
		switch r.Status {
		case StatusApproved:
			summary.ApprovedCount++
			summary.TotalApproved += r.Amount
			breakdown.Approved += r.Amount
		case StatusDeclined:
			summary.DeclinedCount++
			summary.TotalDeclined += r.Amount
			breakdown.Declined += r.Amount
		case StatusFlagged:
			summary.FlaggedCount++
			breakdown.Declined += r.Amount
		}
		summary.PotentialSavings += r.SavingsImpact
		summary.CategoryBreakdown[r.Category] = breakdown
	}

	summary.ApprovalRate = mathutil.CalculatePercentage(float64(summary.ApprovedCount), float64(summary.TotalTransactions))

	return summary
}

// Recommend produces advisory, non-blocking optimization suggestions from an
// evaluated sequence. The checks are independent and may all fire; their
// order is fixed. When none fire, a default well-optimized message is
// returned.
func Recommend(results []Result, profileName string) []string {
	profile := LookupProfile(profileName)
	var recommendations []string

	declinedHighValue := 0
	internationalDeclines := 0
	totalDeclined := 0.0
	for _, r := range results {
		if r.Status != StatusDeclined {
			continue
		}
		totalDeclined += r.Amount
		if r.Amount > 500 {
			declinedHighValue++
		}
		if r.Location == LocationInternational {
			internationalDeclines++
		}
	}

	if declinedHighValue > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Consider splitting large purchases (over €%.0f) into smaller transactions", profile.MaxSingleTransaction))
	}

	if internationalDeclines > 2 {
		recommendations = append(recommendations,
			"Set up travel notifications with your bank before moving abroad to increase international limits")
	}

	if totalDeclined > 1000 {
		recommendations = append(recommendations,
			fmt.Sprintf("Controls saved you €%.0f from potential overspending; use this for visa fund proof", totalDeclined))
	}

	switch profileName {
	case ProfileConservative:
		recommendations = append(recommendations,
			"Your conservative profile is ideal for the first 3 months abroad; consider upgrading later")
	case ProfileFlexible:
		recommendations = append(recommendations,
			"Flexible profile detected; ensure you have emergency savings before high spending")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"Your spending pattern is well-optimized for your profile; keep it up!")
	}

	return recommendations
}

// EvaluateAndSummarize is the combined contract consumed by the UI feed,
// the guidance generator, and the exporters.
func EvaluateAndSummarize(logger *zap.Logger, transactions []Transaction, profileName string, startingDailySpent float64) ([]Result, Summary, []string) {
	results := Evaluate(logger, transactions, profileName, startingDailySpent)
	return results, Summarize(results), Recommend(results, profileName)
}
