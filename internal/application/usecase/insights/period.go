// Package insights contains the report builders that derive summaries,
// trends, and analyses from raw ledger records.
package insights

import "time"

// MonthStart returns the first day of the month containing the given
// date, at UTC midnight. Trend records always carry normalized months.
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthsBetween generates the first day of every calendar month from
// the month containing start through the month containing end,
// inclusive. This is the dense walk used by trend builders that emit
// zero-valued months.
func MonthsBetween(start, end time.Time) []time.Time {
	var months []time.Time

	last := MonthStart(end)
	for current := MonthStart(start); !current.After(last); current = current.AddDate(0, 1, 0) {
		months = append(months, current)
	}

	return months
}

// SameMonth reports whether two dates fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
