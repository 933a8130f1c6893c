package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/MatheusVicenteSantosSilva/MoneyMind-2/internal/controllers/v1"
	"github.com/MatheusVicenteSantosSilva/MoneyMind-2/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getAggregates(t *testing.T, owner string) v1.Aggregates {
	r := test.OwnerRequest(t, owner, http.MethodGet, "http://example.com/v1/aggregates", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.AggregateResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestAggregatesEmpty() {
	aggregates := getAggregates(suite.T(), testOwner())

	assert.True(suite.T(), aggregates.Balance.IsZero())
	assert.True(suite.T(), aggregates.Income.IsZero())
	assert.True(suite.T(), aggregates.Expense.IsZero())
	assert.Len(suite.T(), aggregates.ByCategory, 0)
	assert.True(suite.T(), aggregates.Projection.ProjectedBalance.IsZero())
}

func (suite *TestSuiteStandard) TestAggregates() {
	owner := testOwner()

	createTestEntries(suite.T(), owner, v1.EntryEditable{
		Kind:        "income",
		Description: "Bonus",
		Amount:      decimal.NewFromFloat(100),
		CategoryID:  sharedCategoryID(suite.T(), owner, "Salary"),
	})
	createTestEntries(suite.T(), owner, v1.EntryEditable{
		Kind:        "recurring_income",
		Description: "Side gig",
		Amount:      decimal.NewFromFloat(50),
		CategoryID:  sharedCategoryID(suite.T(), owner, "Salary"),
		Months:      1,
	})
	createTestEntries(suite.T(), owner, v1.EntryEditable{
		Kind:        "expense",
		Description: "Groceries",
		Amount:      decimal.NewFromFloat(30),
		CategoryID:  sharedCategoryID(suite.T(), owner, "Groceries"),
	})

	aggregates := getAggregates(suite.T(), owner)

	assert.True(suite.T(), aggregates.Income.Equal(decimal.NewFromFloat(150)), "Income is %s, expected 150", aggregates.Income)
	assert.True(suite.T(), aggregates.Expense.Equal(decimal.NewFromFloat(30)), "Expense is %s, expected 30", aggregates.Expense)
	assert.True(suite.T(), aggregates.Balance.Equal(decimal.NewFromFloat(120)), "Balance is %s, expected 120", aggregates.Balance)

	// The projection adds the recurring income on top of the balance.
	assert.True(suite.T(), aggregates.Projection.RecurringIncome.Equal(decimal.NewFromFloat(50)))
	assert.True(suite.T(), aggregates.Projection.RecurringDebit.IsZero())
	assert.True(suite.T(), aggregates.Projection.ProjectedBalance.Equal(decimal.NewFromFloat(170)), "Projected balance is %s, expected 170", aggregates.Projection.ProjectedBalance)

	// Per-category breakdown, ordered by name.
	require.Len(suite.T(), aggregates.ByCategory, 2)
	assert.Equal(suite.T(), "Groceries", aggregates.ByCategory[0].Name)
	assert.True(suite.T(), aggregates.ByCategory[0].Expense.Equal(decimal.NewFromFloat(30)))
	assert.Equal(suite.T(), "Salary", aggregates.ByCategory[1].Name)
	assert.True(suite.T(), aggregates.ByCategory[1].Income.Equal(decimal.NewFromFloat(150)))
}

// A recurring group contributes to the projection once per stored entry.
func (suite *TestSuiteStandard) TestAggregatesProjectionPerEntry() {
	owner := testOwner()

	createTestEntries(suite.T(), owner, v1.EntryEditable{
		Kind:        "recurring_debit",
		Description: "Rent",
		Amount:      decimal.NewFromFloat(200),
		Months:      3,
	})

	aggregates := getAggregates(suite.T(), owner)
	assert.True(suite.T(), aggregates.Projection.RecurringDebit.Equal(decimal.NewFromFloat(600)), "Recurring debit is %s, expected 600", aggregates.Projection.RecurringDebit)
}

func (suite *TestSuiteStandard) TestAggregatesIsolatedPerOwner() {
	owner := testOwner()

	createTestEntries(suite.T(), owner, v1.EntryEditable{
		Kind:        "income",
		Description: "Salary",
		Amount:      decimal.NewFromFloat(2500),
	})

	aggregates := getAggregates(suite.T(), testOwner())
	assert.True(suite.T(), aggregates.Balance.IsZero(), "Aggregates must only cover the requesting owner's entries")
}

func (suite *TestSuiteStandard) TestAggregatesOptions() {
	r := test.OwnerRequest(suite.T(), testOwner(), http.MethodOptions, "http://example.com/v1/aggregates", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestAggregatesDatabaseError() {
	suite.CloseDB()

	r := test.OwnerRequest(suite.T(), testOwner(), http.MethodGet, "http://example.com/v1/aggregates", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
