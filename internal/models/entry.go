package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EntryKind is the kind of a ledger entry. It determines the sign of
// the entry in aggregations and whether the entry takes part in the
// monthly projection.
type EntryKind string

const (
	KindIncome          EntryKind = "income"
	KindRecurringIncome EntryKind = "recurring_income"
	KindExpense         EntryKind = "expense"
	KindRecurringDebit  EntryKind = "recurring_debit"
)

// Kinds returns all valid entry kinds.
func Kinds() []EntryKind {
	return []EntryKind{KindIncome, KindRecurringIncome, KindExpense, KindRecurringDebit}
}

// Valid returns true for a known entry kind.
func (k EntryKind) Valid() bool {
	switch k {
	case KindIncome, KindRecurringIncome, KindExpense, KindRecurringDebit:
		return true
	}

	return false
}

// IsIncome returns true for kinds that add to the balance.
func (k EntryKind) IsIncome() bool {
	return k == KindIncome || k == KindRecurringIncome
}

// IsRecurring returns true for kinds that repeat monthly. Only these
// kinds are expanded into groups and contribute to the projection.
func (k EntryKind) IsRecurring() bool {
	return k == KindRecurringIncome || k == KindRecurringDebit
}

// Entry is one financial movement of one owner.
//
// All entries created by a single request share a GroupID. The pair
// (OwnerID, GroupID) is indexed since group resolution runs on every
// update and delete.
type Entry struct {
	DefaultModel
	OwnerID          uuid.UUID `gorm:"index:entry_owner_group,priority:1"`
	GroupID          uuid.UUID `gorm:"index:entry_owner_group,priority:2"`
	Kind             EntryKind
	Description      string
	Amount           decimal.Decimal `gorm:"type:DECIMAL(20,2)"`
	CategoryID       uuid.UUID
	Category         Category `json:"-"`
	OccurredOn       time.Time // Date the entry is effective. Used for sorting, not creation time.
	RecurringEndDate *time.Time
	Tags             string
}

// AfterFind enforces UTC on the dates, see DefaultModel.AfterFind.
func (e *Entry) AfterFind(tx *gorm.DB) (err error) {
	err = e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.OccurredOn = e.OccurredOn.In(time.UTC)
	if e.RecurringEndDate != nil {
		d := e.RecurringEndDate.In(time.UTC)
		e.RecurringEndDate = &d
	}
	return
}

// BeforeSave trims the string fields and sets the timezone for the
// dates to UTC.
func (e *Entry) BeforeSave(_ *gorm.DB) (err error) {
	e.Description = strings.TrimSpace(e.Description)
	e.Tags = strings.TrimSpace(e.Tags)

	if e.OccurredOn.IsZero() {
		e.OccurredOn = time.Now().In(time.UTC)
	} else {
		e.OccurredOn = e.OccurredOn.In(time.UTC)
	}

	if e.RecurringEndDate != nil {
		d := e.RecurringEndDate.In(time.UTC)
		e.RecurringEndDate = &d
	}

	return
}

// BeforeCreate verifies that the referenced category exists and is
// visible to the entry's owner.
func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	var category Category
	err := tx.
		Where("id = ? AND (owner_id IS NULL OR owner_id = ?)", e.CategoryID, e.OwnerID).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrResourceNotFound) {
			return ErrCategoryNotAvailable
		}
		return err
	}

	return nil
}

// validate checks the required fields of an entry before it is
// persisted. It never touches the store.
func (e Entry) validate() error {
	if !e.Kind.Valid() {
		return ErrEntryKindInvalid
	}

	if strings.TrimSpace(e.Description) == "" {
		return ErrDescriptionRequired
	}

	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !e.Amount.Equal(e.Amount.Round(2)) {
		return ErrAmountPrecision
	}

	return nil
}

// EntryFor returns the entry with the ID if it belongs to the owner.
// Entries of other owners are reported as not found.
func EntryFor(ownerID uuid.UUID, id uuid.UUID) (Entry, error) {
	var entry Entry
	err := DB.First(&entry, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		return Entry{}, err
	}

	return entry, nil
}
