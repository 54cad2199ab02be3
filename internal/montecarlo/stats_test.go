package montecarlo

import (
	"math"
	"testing"
)

func TestComputeStatistics(t *testing.T) {
	scenarios := []Scenario{
		{Salary: 2000, TotalSavings12M: 6000, ApprovalProb: 0.6, VisaFundMet: false},
		{Salary: 3000, TotalSavings12M: 18000, ApprovalProb: 0.9, VisaFundMet: true},
		{Salary: 2500, TotalSavings12M: 12000, ApprovalProb: 0.8, VisaFundMet: true},
		{Salary: 1800, TotalSavings12M: 3000, ApprovalProb: 0.5, VisaFundMet: false},
	}

	stats := computeStatistics(scenarios)

	if stats.TotalSimulations != 4 {
		t.Errorf("TotalSimulations = %d, expected 4", stats.TotalSimulations)
	}
	if math.Abs(stats.AvgSalary-2325) > 0.001 {
		t.Errorf("AvgSalary = %.2f, expected 2325", stats.AvgSalary)
	}
	if stats.MinSalary != 1800 || stats.MaxSalary != 3000 {
		t.Errorf("salary range = [%.0f, %.0f], expected [1800, 3000]", stats.MinSalary, stats.MaxSalary)
	}
	if math.Abs(stats.AvgSavings-9750) > 0.001 {
		t.Errorf("AvgSavings = %.2f, expected 9750", stats.AvgSavings)
	}
	if stats.MinSavings != 3000 || stats.MaxSavings != 18000 {
		t.Errorf("savings range = [%.0f, %.0f], expected [3000, 18000]", stats.MinSavings, stats.MaxSavings)
	}
	if math.Abs(stats.AvgApprovalProb-0.7) > 0.0001 {
		t.Errorf("AvgApprovalProb = %.4f, expected 0.7", stats.AvgApprovalProb)
	}
	if stats.MaxApprovalProb != 0.9 {
		t.Errorf("MaxApprovalProb = %.2f, expected 0.9", stats.MaxApprovalProb)
	}
	if stats.VisaFundSuccessRate != 50 {
		t.Errorf("VisaFundSuccessRate = %.2f, expected 50", stats.VisaFundSuccessRate)
	}
}

func TestComputeStatisticsEmpty(t *testing.T) {
	stats := computeStatistics(nil)

	if stats.TotalSimulations != 0 {
		t.Errorf("TotalSimulations = %d, expected 0", stats.TotalSimulations)
	}
	if stats.AvgSalary != 0 || stats.AvgSavings != 0 || stats.AvgApprovalProb != 0 {
		t.Errorf("averages = (%.2f, %.2f, %.4f), expected all zero", stats.AvgSalary, stats.AvgSavings, stats.AvgApprovalProb)
	}
	if stats.VisaFundSuccessRate != 0 {
		t.Errorf("VisaFundSuccessRate = %.2f, expected 0", stats.VisaFundSuccessRate)
	}
}
