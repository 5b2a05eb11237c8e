package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-finance/backend/internal/application/adapter"
	"github.com/personal-finance/backend/internal/domain/entity"
	domainerror "github.com/personal-finance/backend/internal/domain/error"
)

type fakeBudgetRepo struct {
	budgets map[uuid.UUID]*entity.Budget
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{budgets: make(map[uuid.UUID]*entity.Budget)}
}

func (f *fakeBudgetRepo) Create(_ context.Context, b *entity.Budget) error {
	f.budgets[b.ID] = b
	return nil
}

func (f *fakeBudgetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Budget, error) {
	b, ok := f.budgets[id]
	if !ok {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeBudgetNotFound, "budget not found", domainerror.ErrBudgetNotFound)
	}
	return b, nil
}

func (f *fakeBudgetRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	var out []*entity.Budget
	for _, b := range f.budgets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBudgetRepo) FindByUserAndDateRange(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]*entity.Budget, error) {
	return nil, nil
}

func (f *fakeBudgetRepo) FindMostRecent(_ context.Context, _ uuid.UUID, _, _ time.Time) (*entity.Budget, error) {
	return nil, nil
}

func (f *fakeBudgetRepo) Update(_ context.Context, b *entity.Budget) error {
	f.budgets[b.ID] = b
	return nil
}

func (f *fakeBudgetRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.budgets, id)
	return nil
}

var _ adapter.BudgetRepository = (*fakeBudgetRepo)(nil)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCloseBudgetUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("closes an open budget", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		b := entity.NewBudget(userID, decimal.NewFromInt(500), "groceries", date(2024, time.January, 1))
		repo.budgets[b.ID] = b

		uc := NewCloseBudgetUseCase(repo)
		closed, err := uc.Execute(ctx, CloseBudgetInput{ID: b.ID, UserID: userID, EndDate: date(2024, time.January, 31)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !closed.Closed() {
			t.Error("expected budget to be closed")
		}
		if got := repo.budgets[b.ID]; !got.Closed() {
			t.Error("expected close to be persisted")
		}
	})

	t.Run("rejects closing an already-closed budget", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		b := entity.NewBudget(userID, decimal.NewFromInt(500), "groceries", date(2024, time.January, 1))
		b.Close(date(2024, time.January, 31))
		repo.budgets[b.ID] = b

		uc := NewCloseBudgetUseCase(repo)
		_, err := uc.Execute(ctx, CloseBudgetInput{ID: b.ID, UserID: userID, EndDate: date(2024, time.February, 28)})
		if !errors.Is(err, domainerror.ErrBudgetClosed) {
			t.Errorf("expected ErrBudgetClosed, got %v", err)
		}
	})

	t.Run("rejects end date before start date", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		b := entity.NewBudget(userID, decimal.NewFromInt(500), "groceries", date(2024, time.March, 1))
		repo.budgets[b.ID] = b

		uc := NewCloseBudgetUseCase(repo)
		_, err := uc.Execute(ctx, CloseBudgetInput{ID: b.ID, UserID: userID, EndDate: date(2024, time.February, 1)})
		if !errors.Is(err, domainerror.ErrInvalidBudgetPeriod) {
			t.Errorf("expected ErrInvalidBudgetPeriod, got %v", err)
		}
	})

	t.Run("reports another user's budget as not found", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		b := entity.NewBudget(uuid.New(), decimal.NewFromInt(500), "groceries", date(2024, time.January, 1))
		repo.budgets[b.ID] = b

		uc := NewCloseBudgetUseCase(repo)
		_, err := uc.Execute(ctx, CloseBudgetInput{ID: b.ID, UserID: userID, EndDate: date(2024, time.January, 31)})
		if !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Errorf("expected ErrBudgetNotFound, got %v", err)
		}
	})
}

func TestUpdateBudgetUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("updates an open budget", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		b := entity.NewBudget(userID, decimal.NewFromInt(500), "groceries", date(2024, time.January, 1))
		repo.budgets[b.ID] = b

		uc := NewUpdateBudgetUseCase(repo)
		updated, err := uc.Execute(ctx, UpdateBudgetInput{
			ID:          b.ID,
			UserID:      userID,
			Amount:      decimal.NewFromInt(750),
			Description: "groceries and dining",
			StartDate:   date(2024, time.January, 1),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.Amount.Equal(decimal.NewFromInt(750)) {
			t.Errorf("expected amount 750, got %s", updated.Amount)
		}
	})

	t.Run("rejects updates to a closed budget", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		b := entity.NewBudget(userID, decimal.NewFromInt(500), "groceries", date(2024, time.January, 1))
		b.Close(date(2024, time.January, 31))
		repo.budgets[b.ID] = b

		uc := NewUpdateBudgetUseCase(repo)
		_, err := uc.Execute(ctx, UpdateBudgetInput{
			ID:        b.ID,
			UserID:    userID,
			Amount:    decimal.NewFromInt(750),
			StartDate: date(2024, time.January, 1),
		})
		if !errors.Is(err, domainerror.ErrBudgetClosed) {
			t.Errorf("expected ErrBudgetClosed, got %v", err)
		}
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		uc := NewUpdateBudgetUseCase(repo)
		_, err := uc.Execute(ctx, UpdateBudgetInput{
			ID:     uuid.New(),
			UserID: userID,
			Amount: decimal.NewFromInt(-1),
		})
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})
}
