// Package insights contains the report builders that derive summaries,
// trends, and analyses from raw ledger records.
package insights

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/domain/entity"
)

func TestClassifyExpenses(t *testing.T) {
	thresholds := testThresholds()

	tests := []struct {
		name     string
		total    string
		expected entity.InsightStatus
	}{
		{name: "zero is good", total: "0", expected: entity.StatusGood},
		{name: "below ceiling is good", total: "4999.99", expected: entity.StatusGood},
		{name: "at ceiling is bad", total: "5000", expected: entity.StatusBad},
		{name: "above ceiling is bad", total: "5000.01", expected: entity.StatusBad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := thresholds.ClassifyExpenses(decimal.RequireFromString(tt.total))
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestClassifyIncome(t *testing.T) {
	thresholds := testThresholds()

	tests := []struct {
		name     string
		total    string
		expected entity.InsightStatus
	}{
		{name: "zero is bad", total: "0", expected: entity.StatusBad},
		{name: "below floor is bad", total: "9999.99", expected: entity.StatusBad},
		{name: "at floor is bad", total: "10000", expected: entity.StatusBad},
		{name: "above floor is good", total: "10000.01", expected: entity.StatusGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := thresholds.ClassifyIncome(decimal.RequireFromString(tt.total))
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestClassifySavings(t *testing.T) {
	thresholds := testThresholds()

	tests := []struct {
		name     string
		achieved string
		goal     string
		expected entity.InsightStatus
	}{
		{name: "above goal is on track", achieved: "250", goal: "200", expected: entity.StatusOnTrack},
		{name: "exactly at goal is on track", achieved: "200", goal: "200", expected: entity.StatusOnTrack},
		{name: "below goal needs attention", achieved: "199.99", goal: "200", expected: entity.StatusNeedsAttention},
		{name: "zero goal is always met", achieved: "0", goal: "0", expected: entity.StatusOnTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := thresholds.ClassifySavings(decimal.RequireFromString(tt.achieved), decimal.RequireFromString(tt.goal))
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestClassifyHealth(t *testing.T) {
	thresholds := testThresholds()

	tests := []struct {
		name     string
		income   string
		expenses string
		expected entity.InsightStatus
	}{
		{name: "income above expenses is good", income: "1000", expenses: "500", expected: entity.StatusGood},
		{name: "break even is good", income: "500", expenses: "500", expected: entity.StatusGood},
		{name: "expenses above income is bad", income: "500", expenses: "500.01", expected: entity.StatusBad},
		{name: "both zero is good", income: "0", expenses: "0", expected: entity.StatusGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := thresholds.ClassifyHealth(decimal.RequireFromString(tt.income), decimal.RequireFromString(tt.expenses))
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestSavingsGoal(t *testing.T) {
	thresholds := testThresholds()

	goal := thresholds.SavingsGoal(decimal.RequireFromString("12345.50"))
	expected := decimal.RequireFromString("2469.10")
	if !goal.Equal(expected) {
		t.Errorf("expected goal %s, got %s", expected, goal)
	}
}
