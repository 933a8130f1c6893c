package models_test

import (
	"time"

	"github.com/MatheusVicenteSantosSilva/MoneyMind-2/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTotalsAndBalance() {
	entries := []models.Entry{
		{Kind: models.KindIncome, Amount: decimal.NewFromFloat(100)},
		{Kind: models.KindRecurringIncome, Amount: decimal.NewFromFloat(50)},
		{Kind: models.KindExpense, Amount: decimal.NewFromFloat(30)},
	}

	income, expense := models.Totals(entries)
	assert.True(suite.T(), income.Equal(decimal.NewFromFloat(150)), "Income is %s, expected 150", income)
	assert.True(suite.T(), expense.Equal(decimal.NewFromFloat(30)), "Expense is %s, expected 30", expense)

	balance := models.Balance(entries)
	assert.True(suite.T(), balance.Equal(decimal.NewFromFloat(120)), "Balance is %s, expected 120", balance)
}

func (suite *TestSuiteStandard) TestBalanceEmpty() {
	income, expense := models.Totals(nil)
	assert.True(suite.T(), income.IsZero())
	assert.True(suite.T(), expense.IsZero())
	assert.True(suite.T(), models.Balance(nil).IsZero())
}

func (suite *TestSuiteStandard) TestProjection() {
	entries := []models.Entry{
		{Kind: models.KindIncome, Amount: decimal.NewFromFloat(100)},
		{Kind: models.KindRecurringIncome, Amount: decimal.NewFromFloat(50)},
		{Kind: models.KindExpense, Amount: decimal.NewFromFloat(30)},
		{Kind: models.KindRecurringDebit, Amount: decimal.NewFromFloat(20)},
	}

	projection := models.Projection(models.Balance(entries), entries)
	assert.True(suite.T(), projection.RecurringIncome.Equal(decimal.NewFromFloat(50)))
	assert.True(suite.T(), projection.RecurringDebit.Equal(decimal.NewFromFloat(20)))
	assert.True(suite.T(), projection.ProjectedBalance.Equal(decimal.NewFromFloat(130)), "Projected balance is %s, expected 130", projection.ProjectedBalance)
}

// Every stored row of a recurring group contributes to the projection,
// a group of three rows counts three times.
func (suite *TestSuiteStandard) TestProjectionCountsPerRow() {
	owner := uuid.New()
	category := suite.sharedCategory("Housing")

	drafts, err := models.ExpandGroup(owner, models.EntryTemplate{
		Kind:        models.KindRecurringDebit,
		Description: "Rent",
		Amount:      decimal.NewFromFloat(200),
		CategoryID:  category.ID,
		Months:      3,
	}, time.Now())
	require.NoError(suite.T(), err)

	_, err = models.CreateEntryGroup(drafts)
	require.NoError(suite.T(), err)

	entries, err := models.ListEntries(owner)
	require.NoError(suite.T(), err)

	projection := models.Projection(models.Balance(entries), entries)
	assert.True(suite.T(), projection.RecurringDebit.Equal(decimal.NewFromFloat(600)), "Recurring debit is %s, expected 600", projection.RecurringDebit)
}

func (suite *TestSuiteStandard) TestProjectionEmpty() {
	projection := models.Projection(decimal.Zero, nil)
	assert.True(suite.T(), projection.RecurringIncome.IsZero())
	assert.True(suite.T(), projection.RecurringDebit.IsZero())
	assert.True(suite.T(), projection.ProjectedBalance.IsZero())
}

func (suite *TestSuiteStandard) TestCategorySums() {
	groceries := suite.sharedCategory("Groceries")
	salary := suite.sharedCategory("Salary")

	entries := []models.Entry{
		{Kind: models.KindExpense, Amount: decimal.NewFromFloat(30), CategoryID: groceries.ID, Category: groceries},
		{Kind: models.KindExpense, Amount: decimal.NewFromFloat(12.50), CategoryID: groceries.ID, Category: groceries},
		{Kind: models.KindIncome, Amount: decimal.NewFromFloat(2500), CategoryID: salary.ID, Category: salary},
	}

	sums := models.CategorySums(entries)
	require.Len(suite.T(), sums, 2)

	// Ordered by category name, Groceries before Salary.
	assert.Equal(suite.T(), "Groceries", sums[0].Name)
	assert.True(suite.T(), sums[0].Expense.Equal(decimal.NewFromFloat(42.50)), "Groceries expense is %s, expected 42.50", sums[0].Expense)
	assert.True(suite.T(), sums[0].Income.IsZero())

	assert.Equal(suite.T(), "Salary", sums[1].Name)
	assert.True(suite.T(), sums[1].Income.Equal(decimal.NewFromFloat(2500)))
	assert.True(suite.T(), sums[1].Expense.IsZero())
}

func (suite *TestSuiteStandard) TestListEntries() {
	owner := uuid.New()
	category := suite.sharedCategory("Groceries")

	older := suite.createTestEntry(models.Entry{
		OwnerID:    owner,
		Kind:       models.KindExpense,
		CategoryID: category.ID,
		OccurredOn: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	newer := suite.createTestEntry(models.Entry{
		OwnerID:    owner,
		Kind:       models.KindExpense,
		CategoryID: category.ID,
		OccurredOn: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})

	// Another owner's entry must not show up.
	suite.createTestEntry(models.Entry{
		OwnerID:    uuid.New(),
		Kind:       models.KindExpense,
		CategoryID: category.ID,
	})

	entries, err := models.ListEntries(owner)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), entries, 2)

	assert.Equal(suite.T(), newer.ID, entries[0].ID, "Entries must be sorted newest first")
	assert.Equal(suite.T(), older.ID, entries[1].ID)
	assert.Equal(suite.T(), "Groceries", entries[0].Category.Name, "Category must be preloaded")
}
