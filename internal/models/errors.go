package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrWriteFailed is returned when a batch write could not be completed.
	// The transaction is rolled back, so no partial state is ever visible
	// and the caller can safely retry.
	ErrWriteFailed = errors.New("the ledger entries could not be saved, no changes were made")
)

// Validation errors for ledger entries. They are checked before any
// row is written, so a request failing with one of these never
// changed the store.
var (
	ErrEntryKindInvalid      = errors.New("the entry kind must be one of income, recurring_income, expense, recurring_debit")
	ErrDescriptionRequired   = errors.New("the description must be set")
	ErrAmountNotPositive     = errors.New("the amount must be larger than zero")
	ErrAmountPrecision       = errors.New("the amount must not have more than two decimal places")
	ErrCategoryNotAvailable  = errors.New("the category does not exist or is not available to you")
	ErrMonthsInvalid         = errors.New("invalid number of months, must be between 1 and 120")
	ErrNoUpdateableFieldsSet = errors.New("you must set at least one field to update")
	ErrCategoryNameNotUnique = errors.New("the category name is already in use")
)
