// Package insights contains the report builders that derive summaries,
// trends, and analyses from raw ledger records.
package insights

import (
	"time"

	"github.com/google/uuid"

	domainerror "github.com/personal-finance/backend/internal/domain/error"
)

// TrendInput represents the input for the trend builders.
type TrendInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// validate checks the date range of a trend input.
func (in TrendInput) validate() error {
	if in.StartDate.IsZero() {
		return domainerror.NewInsightError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}

	if in.EndDate.IsZero() {
		return domainerror.NewInsightError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	if in.EndDate.Before(in.StartDate) {
		return domainerror.NewInsightError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	return nil
}
