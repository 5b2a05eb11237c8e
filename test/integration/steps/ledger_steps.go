package steps

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/domain/entity"
)

// registerLedgerSteps registers steps that seed ledger records.
func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^I have an expense of "([^"]*)" in category "([^"]*)" dated "([^"]*)"$`, iHaveAnExpense)
	ctx.Step(`^I have a transaction of "([^"]*)" described as "([^"]*)"$`, iHaveATransaction)
	ctx.Step(`^I have an income of "([^"]*)" of type "([^"]*)" dated "([^"]*)"$`, iHaveAnIncome)
	ctx.Step(`^I have a budget of "([^"]*)" running from "([^"]*)" to "([^"]*)"$`, iHaveAClosedBudget)
	ctx.Step(`^I have an open budget of "([^"]*)" starting "([^"]*)"$`, iHaveAnOpenBudget)
	ctx.Step(`^I close my latest budget with end date "([^"]*)"$`, iCloseMyLatestBudget)
}

func iAmAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)

	tc.userID = uuid.New()
	token, err := tc.issueToken(tc.userID)
	if err != nil {
		return ctx, fmt.Errorf("failed to issue token: %w", err)
	}
	tc.token = token
	return ctx, nil
}

func iHaveAnExpense(ctx context.Context, amount, category, date string) (context.Context, error) {
	tc := GetTestContext(ctx)

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return ctx, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ctx, fmt.Errorf("invalid date %q: %w", date, err)
	}

	e := entity.NewExpense(tc.userID, amt, category, day, "")
	return ctx, tc.expenseRepo.Create(context.Background(), e)
}

func iHaveATransaction(ctx context.Context, amount, description string) (context.Context, error) {
	tc := GetTestContext(ctx)

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return ctx, fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	tr := entity.NewTransaction(tc.userID, amt, description)
	return ctx, tc.transactionRepo.Create(context.Background(), tr)
}

func iHaveAnIncome(ctx context.Context, amount, incomeType, date string) (context.Context, error) {
	tc := GetTestContext(ctx)

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return ctx, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ctx, fmt.Errorf("invalid date %q: %w", date, err)
	}

	in := entity.NewIncome(tc.userID, incomeType, amt, day)
	return ctx, tc.incomeRepo.Create(context.Background(), in)
}

func iHaveAClosedBudget(ctx context.Context, amount, start, end string) (context.Context, error) {
	tc := GetTestContext(ctx)

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return ctx, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return ctx, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return ctx, fmt.Errorf("invalid end date %q: %w", end, err)
	}

	b := entity.NewBudget(tc.userID, amt, "", startDate)
	b.Close(endDate)
	return ctx, tc.budgetRepo.Create(context.Background(), b)
}

func iHaveAnOpenBudget(ctx context.Context, amount, start string) (context.Context, error) {
	tc := GetTestContext(ctx)

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return ctx, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return ctx, fmt.Errorf("invalid start date %q: %w", start, err)
	}

	b := entity.NewBudget(tc.userID, amt, "", startDate)
	return ctx, tc.budgetRepo.Create(context.Background(), b)
}

func iCloseMyLatestBudget(ctx context.Context, end string) (context.Context, error) {
	tc := GetTestContext(ctx)

	budgets, err := tc.budgetRepo.FindByUser(context.Background(), tc.userID)
	if err != nil {
		return ctx, fmt.Errorf("failed to list budgets: %w", err)
	}
	if len(budgets) == 0 {
		return ctx, fmt.Errorf("no budget seeded for user %s", tc.userID)
	}

	body := fmt.Sprintf(`{"end_date": %q}`, end)
	path := "/api/v1/budgets/" + budgets[0].ID.String() + "/close"
	return doRequest(ctx, http.MethodPost, path, strings.NewReader(body))
}
