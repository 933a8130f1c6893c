package models

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListEntries returns all entries of the owner, newest first. Ties on
// the effective date are broken by the creation time.
func ListEntries(ownerID uuid.UUID) ([]Entry, error) {
	var entries []Entry
	err := DB.
		Preload("Category").
		Where("owner_id = ?", ownerID).
		Order("datetime(occurred_on) DESC, datetime(created_at) DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Totals returns the income and expense sums of the entries. Income
// kinds count towards income, all other kinds towards expense. An
// empty list sums to zero on both.
func Totals(entries []Entry) (income, expense decimal.Decimal) {
	for _, entry := range entries {
		if entry.Kind.IsIncome() {
			income = income.Add(entry.Amount)
		} else {
			expense = expense.Add(entry.Amount)
		}
	}

	return income, expense
}

// Balance returns the income sum minus the expense sum of the entries.
func Balance(entries []Entry) decimal.Decimal {
	income, expense := Totals(entries)
	return income.Sub(expense)
}

// CategorySum is the per-category part of the aggregation.
type CategorySum struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"d27b71b1-1b9d-4333-98b1-d84d7be55274"` // ID of the category
	Name       string          `json:"name" example:"Groceries"`                                  // Name of the category
	Income     decimal.Decimal `json:"income" example:"250.00"`                                   // Sum of income entries in this category
	Expense    decimal.Decimal `json:"expense" example:"81.93"`                                   // Sum of expense entries in this category
}

// CategorySums groups the entries by category and sums income and
// expense per category. The result is ordered by category name.
func CategorySums(entries []Entry) []CategorySum {
	sums := make(map[uuid.UUID]*CategorySum)

	for _, entry := range entries {
		sum, ok := sums[entry.CategoryID]
		if !ok {
			sum = &CategorySum{
				CategoryID: entry.CategoryID,
				Name:       entry.Category.Name,
			}
			sums[entry.CategoryID] = sum
		}

		if entry.Kind.IsIncome() {
			sum.Income = sum.Income.Add(entry.Amount)
		} else {
			sum.Expense = sum.Expense.Add(entry.Amount)
		}
	}

	result := make([]CategorySum, 0, len(sums))
	for _, sum := range sums {
		result = append(result, *sum)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// ProjectionResult is the forward looking balance estimate for the
// next month.
type ProjectionResult struct {
	RecurringIncome  decimal.Decimal `json:"recurringIncome" example:"2500.00"`  // Sum of all recurring income entries
	RecurringDebit   decimal.Decimal `json:"recurringDebit" example:"830.00"`    // Sum of all recurring debit entries
	ProjectedBalance decimal.Decimal `json:"projectedBalance" example:"1670.00"` // Current balance plus recurring income minus recurring debit
}

// Projection computes the projected next-month balance from the
// current balance and the recurring entries.
//
// Every stored recurring entry contributes once, regardless of its
// date. A recurring group therefore contributes once per stored row,
// not once per group.
func Projection(balance decimal.Decimal, entries []Entry) ProjectionResult {
	var income, debit decimal.Decimal

	for _, entry := range entries {
		switch entry.Kind {
		case KindRecurringIncome:
			income = income.Add(entry.Amount)
		case KindRecurringDebit:
			debit = debit.Add(entry.Amount)
		}
	}

	return ProjectionResult{
		RecurringIncome:  income,
		RecurringDebit:   debit,
		ProjectedBalance: balance.Add(income).Sub(debit),
	}
}
