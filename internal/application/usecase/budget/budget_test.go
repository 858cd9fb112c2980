// Package budget contains budget-plan use cases.
package budget

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainbudget "github.com/batchflow/backend/internal/domain/budget"
	"github.com/batchflow/backend/internal/domain/entity"
	domainerror "github.com/batchflow/backend/internal/domain/error"
	"github.com/batchflow/backend/internal/domain/valueobject"
)

// fakeBudgetRepo is an in-memory BudgetRepository for use case tests.
type fakeBudgetRepo struct {
	plans map[valueobject.MonthKey]*entity.BudgetPlan
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{plans: map[valueobject.MonthKey]*entity.BudgetPlan{}}
}

func (r *fakeBudgetRepo) FindByMonth(_ context.Context, monthKey valueobject.MonthKey) (*entity.BudgetPlan, bool, error) {
	if plan, ok := r.plans[monthKey]; ok {
		return plan, true, nil
	}
	return entity.NewBudgetPlan(monthKey), false, nil
}

func (r *fakeBudgetRepo) EnsureMonth(_ context.Context, monthKey valueobject.MonthKey) error {
	if _, ok := r.plans[monthKey]; !ok {
		r.plans[monthKey] = entity.NewBudgetPlan(monthKey)
	}
	return nil
}

func (r *fakeBudgetRepo) UpsertCategoryAmount(_ context.Context, monthKey valueobject.MonthKey, categoryID uuid.UUID, amount decimal.Decimal) error {
	if _, ok := r.plans[monthKey]; !ok {
		r.plans[monthKey] = entity.NewBudgetPlan(monthKey)
	}
	r.plans[monthKey].SetCategoryPlanned(categoryID, amount)
	return nil
}

func (r *fakeBudgetRepo) UpsertSubcategoryAmount(_ context.Context, monthKey valueobject.MonthKey, subcategoryID uuid.UUID, amount decimal.Decimal) error {
	if _, ok := r.plans[monthKey]; !ok {
		r.plans[monthKey] = entity.NewBudgetPlan(monthKey)
	}
	r.plans[monthKey].SetSubcategoryPlanned(subcategoryID, amount)
	return nil
}

func (r *fakeBudgetRepo) ListMonths(_ context.Context) ([]valueobject.MonthKey, error) {
	months := make([]valueobject.MonthKey, 0, len(r.plans))
	for k := range r.plans {
		months = append(months, k)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
	return months, nil
}

// fixedCategoryRepo serves a fixed category list; write methods are unused here.
type fixedCategoryRepo struct {
	categories []*entity.Category
}

func (r *fixedCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

func (r *fixedCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fixedCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *fixedCategoryRepo) FindByType(_ context.Context, categoryType entity.CategoryType) ([]*entity.Category, error) {
	var group []*entity.Category
	for _, c := range r.categories {
		if c.Type == categoryType {
			group = append(group, c)
		}
	}
	return group, nil
}

func (r *fixedCategoryRepo) ExistsByName(_ context.Context, _ string) (bool, error) { return false, nil }
func (r *fixedCategoryRepo) Update(_ context.Context, _ *entity.Category) error     { return nil }
func (r *fixedCategoryRepo) Delete(_ context.Context, _ uuid.UUID) error            { return nil }

// fixedTransactionRepo serves a fixed transaction list for overview tests.
type fixedTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *fixedTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fixedTransactionRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fixedTransactionRepo) FindByMonth(_ context.Context, monthKey valueobject.MonthKey) ([]*entity.Transaction, error) {
	var matched []*entity.Transaction
	for _, t := range r.transactions {
		if monthKey.ContainsTime(t.Date) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (r *fixedTransactionRepo) FindByRuleAndMonth(_ context.Context, _ uuid.UUID, _ valueobject.MonthKey) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fixedTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error { return nil }
func (r *fixedTransactionRepo) Delete(_ context.Context, _ uuid.UUID) error           { return nil }

func mustDay(t *testing.T, day string) time.Time {
	t.Helper()
	parsed, err := valueobject.ParseDay(day)
	if err != nil {
		t.Fatalf("parse day %s: %v", day, err)
	}
	return parsed
}

func TestGetMonthOverviewUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("computes spent, roll-up and status per category", func(t *testing.T) {
		housing := entity.NewCategory("Housing", entity.DefaultCategoryColor, entity.CategoryTypeExpense, 0)
		housing.Subcategories = []entity.Subcategory{
			entity.NewSubcategory("Rent", 0),
			entity.NewSubcategory("Utilities", 1),
		}
		salary := entity.NewCategory("Salary", entity.DefaultCategoryColor, entity.CategoryTypeIncome, 0)

		rent := housing.Subcategories[0].ID
		transactions := []*entity.Transaction{
			entity.NewTransaction(mustDay(t, "2024-03-01"), decimal.NewFromInt(400), entity.TransactionTypeExpense, housing.ID, &rent, "", ""),
			entity.NewTransaction(mustDay(t, "2024-03-15"), decimal.NewFromInt(200), entity.TransactionTypeExpense, housing.ID, nil, "", ""),
			entity.NewTransaction(mustDay(t, "2024-03-05"), decimal.NewFromInt(2000), entity.TransactionTypeIncome, salary.ID, nil, "", ""),
			// Next month, must not leak into March.
			entity.NewTransaction(mustDay(t, "2024-04-01"), decimal.NewFromInt(999), entity.TransactionTypeExpense, housing.ID, nil, "", ""),
		}

		budgetRepo := newFakeBudgetRepo()
		if err := budgetRepo.UpsertSubcategoryAmount(ctx, "2024-03", rent, decimal.NewFromInt(600)); err != nil {
			t.Fatal(err)
		}
		if err := budgetRepo.UpsertSubcategoryAmount(ctx, "2024-03", housing.Subcategories[1].ID, decimal.NewFromInt(400)); err != nil {
			t.Fatal(err)
		}

		uc := NewGetMonthOverviewUseCase(
			&fixedCategoryRepo{categories: []*entity.Category{housing, salary}},
			&fixedTransactionRepo{transactions: transactions},
			budgetRepo,
		)

		output, err := uc.Execute(ctx, GetMonthOverviewInput{MonthKey: "2024-03"})
		if err != nil {
			t.Fatalf("overview failed: %v", err)
		}

		if !output.Initialized {
			t.Error("expected month to be initialized")
		}

		var housingProgress *CategoryProgress
		for i := range output.Categories {
			if output.Categories[i].ID == housing.ID {
				housingProgress = &output.Categories[i]
			}
		}
		if housingProgress == nil {
			t.Fatal("housing category missing from overview")
		}

		if !housingProgress.Spent.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected housing spent 600, got %s", housingProgress.Spent)
		}
		// Subcategory entries exist, so planned is their sum.
		if !housingProgress.Planned.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected housing planned 1000, got %s", housingProgress.Planned)
		}
		if housingProgress.Percent != 60 {
			t.Errorf("expected 60%%, got %d%%", housingProgress.Percent)
		}
		if housingProgress.Status != domainbudget.ProgressGood {
			t.Errorf("expected good status, got %s", housingProgress.Status)
		}

		if !output.ActualIncome.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("expected income 2000, got %s", output.ActualIncome)
		}
		if !output.ActualExpenses.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected expenses 600, got %s", output.ActualExpenses)
		}
		if !output.Net.Equal(decimal.NewFromInt(1400)) {
			t.Errorf("expected net 1400, got %s", output.Net)
		}
		if !output.PlannedExpenses.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected planned expenses 1000, got %s", output.PlannedExpenses)
		}
	})

	t.Run("uninitialized month yields zero plan and false flag", func(t *testing.T) {
		uc := NewGetMonthOverviewUseCase(
			&fixedCategoryRepo{},
			&fixedTransactionRepo{},
			newFakeBudgetRepo(),
		)

		output, err := uc.Execute(ctx, GetMonthOverviewInput{MonthKey: "2031-01"})
		if err != nil {
			t.Fatalf("overview failed: %v", err)
		}
		if output.Initialized {
			t.Error("expected uninitialized month")
		}
		if !output.PlannedExpenses.IsZero() {
			t.Errorf("expected zero planned expenses, got %s", output.PlannedExpenses)
		}
	})

	t.Run("rejects malformed month keys", func(t *testing.T) {
		uc := NewGetMonthOverviewUseCase(&fixedCategoryRepo{}, &fixedTransactionRepo{}, newFakeBudgetRepo())

		_, err := uc.Execute(ctx, GetMonthOverviewInput{MonthKey: "2024-13"})
		if !errors.Is(err, domainerror.ErrInvalidMonthKey) {
			t.Errorf("expected ErrInvalidMonthKey, got %v", err)
		}
	})
}

func TestSetPlannedAmountUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects negative amounts", func(t *testing.T) {
		uc := NewSetPlannedAmountUseCase(newFakeBudgetRepo())

		err := uc.Execute(ctx, SetPlannedAmountInput{
			MonthKey: "2024-03",
			Level:    LevelCategory,
			TargetID: uuid.New(),
			Amount:   decimal.NewFromInt(-1),
		})
		if !errors.Is(err, domainerror.ErrNegativePlannedAmount) {
			t.Errorf("expected ErrNegativePlannedAmount, got %v", err)
		}
	})

	t.Run("first write sets up the month", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		uc := NewSetPlannedAmountUseCase(repo)

		categoryID := uuid.New()
		if err := uc.Execute(ctx, SetPlannedAmountInput{
			MonthKey: "2024-03",
			Level:    LevelCategory,
			TargetID: categoryID,
			Amount:   decimal.NewFromInt(500),
		}); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		plan, initialized, _ := repo.FindByMonth(ctx, "2024-03")
		if !initialized {
			t.Error("expected month to be set up after first write")
		}
		if !plan.Planned[categoryID].Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected planned 500, got %s", plan.Planned[categoryID])
		}
	})

	t.Run("stores explicit zero at subcategory level", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		uc := NewSetPlannedAmountUseCase(repo)

		subcategoryID := uuid.New()
		if err := uc.Execute(ctx, SetPlannedAmountInput{
			MonthKey: "2024-03",
			Level:    LevelSubcategory,
			TargetID: subcategoryID,
			Amount:   decimal.Zero,
		}); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		plan, _, _ := repo.FindByMonth(ctx, "2024-03")
		amount, ok := plan.SubcategoryPlanned[subcategoryID]
		if !ok {
			t.Fatal("expected explicit zero entry to be stored")
		}
		if !amount.IsZero() {
			t.Errorf("expected zero, got %s", amount)
		}
	})
}

func TestInitializeMonthUseCase(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBudgetRepo()
	uc := NewInitializeMonthUseCase(repo)

	if err := uc.Execute(ctx, InitializeMonthInput{MonthKey: "2024-03"}); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	_, initialized, _ := repo.FindByMonth(ctx, "2024-03")
	if !initialized {
		t.Error("expected month to be initialized")
	}

	// Re-initializing an existing month is a no-op.
	categoryID := uuid.New()
	if err := repo.UpsertCategoryAmount(ctx, "2024-03", categoryID, decimal.NewFromInt(100)); err != nil {
		t.Fatal(err)
	}
	if err := uc.Execute(ctx, InitializeMonthInput{MonthKey: "2024-03"}); err != nil {
		t.Fatalf("re-initialize failed: %v", err)
	}
	plan, _, _ := repo.FindByMonth(ctx, "2024-03")
	if !plan.Planned[categoryID].Equal(decimal.NewFromInt(100)) {
		t.Error("expected re-initialization to keep existing amounts")
	}
}

func TestCopyBudgetUseCase(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*fakeBudgetRepo, uuid.UUID, uuid.UUID) {
		t.Helper()
		repo := newFakeBudgetRepo()
		categoryID := uuid.New()
		subcategoryID := uuid.New()
		if err := repo.UpsertCategoryAmount(ctx, "2024-01", categoryID, decimal.NewFromInt(300)); err != nil {
			t.Fatal(err)
		}
		if err := repo.UpsertSubcategoryAmount(ctx, "2024-01", subcategoryID, decimal.NewFromInt(150)); err != nil {
			t.Fatal(err)
		}
		return repo, categoryID, subcategoryID
	}

	t.Run("copies both levels from an explicit month", func(t *testing.T) {
		repo, categoryID, subcategoryID := seed(t)
		uc := NewCopyBudgetUseCase(repo)

		output, err := uc.Execute(ctx, CopyBudgetInput{FromMonthKey: "2024-01", ToMonthKey: "2024-03"})
		if err != nil {
			t.Fatalf("copy failed: %v", err)
		}
		if output.FromMonthKey != "2024-01" {
			t.Errorf("expected source 2024-01, got %s", output.FromMonthKey)
		}

		plan, initialized, _ := repo.FindByMonth(ctx, "2024-03")
		if !initialized {
			t.Error("expected target month to be set up")
		}
		if !plan.Planned[categoryID].Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected copied category amount 300, got %s", plan.Planned[categoryID])
		}
		if !plan.SubcategoryPlanned[subcategoryID].Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected copied subcategory amount 150, got %s", plan.SubcategoryPlanned[subcategoryID])
		}
	})

	t.Run("defaults to the nearest earlier month", func(t *testing.T) {
		repo, categoryID, _ := seed(t)
		// A later month that must not be chosen as source.
		if err := repo.UpsertCategoryAmount(ctx, "2024-05", uuid.New(), decimal.NewFromInt(999)); err != nil {
			t.Fatal(err)
		}
		uc := NewCopyBudgetUseCase(repo)

		output, err := uc.Execute(ctx, CopyBudgetInput{ToMonthKey: "2024-04"})
		if err != nil {
			t.Fatalf("copy failed: %v", err)
		}
		if output.FromMonthKey != "2024-01" {
			t.Errorf("expected source 2024-01, got %s", output.FromMonthKey)
		}

		plan, _, _ := repo.FindByMonth(ctx, "2024-04")
		if !plan.Planned[categoryID].Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected copied amount 300, got %s", plan.Planned[categoryID])
		}
	})

	t.Run("fails when no earlier month exists", func(t *testing.T) {
		uc := NewCopyBudgetUseCase(newFakeBudgetRepo())

		_, err := uc.Execute(ctx, CopyBudgetInput{ToMonthKey: "2024-04"})
		if !errors.Is(err, domainerror.ErrInvalidMonthRange) {
			t.Errorf("expected ErrInvalidMonthRange, got %v", err)
		}
	})
}
