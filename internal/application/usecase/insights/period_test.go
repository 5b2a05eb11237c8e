// Package insights contains the report builders that derive summaries,
// trends, and analyses from raw ledger records.
package insights

import (
	"testing"
	"time"
)

func TestMonthStart(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected time.Time
	}{
		{
			name:     "mid-month is normalized",
			date:     time.Date(2025, time.March, 17, 14, 30, 0, 0, time.UTC),
			expected: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "first day stays put",
			date:     time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "last day of december",
			date:     time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
			expected: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthStart(tt.date); !got.Equal(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMonthsBetween(t *testing.T) {
	t.Run("walk spans year boundary", func(t *testing.T) {
		months := MonthsBetween(
			time.Date(2024, time.November, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC),
		)

		if len(months) != 4 {
			t.Fatalf("expected 4 months, got %d", len(months))
		}

		expected := []time.Time{
			time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		}
		for i, month := range months {
			if !month.Equal(expected[i]) {
				t.Errorf("month %d: expected %v, got %v", i, expected[i], month)
			}
		}
	})

	t.Run("single month range yields one entry", func(t *testing.T) {
		months := MonthsBetween(
			time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
		)

		if len(months) != 1 {
			t.Fatalf("expected 1 month, got %d", len(months))
		}
	})
}

func TestSameMonth(t *testing.T) {
	a := time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.April, 29, 0, 0, 0, 0, time.UTC)
	c := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)

	if !SameMonth(a, b) {
		t.Error("expected same month for dates in April 2025")
	}
	if SameMonth(a, c) {
		t.Error("expected different months across years")
	}
}
