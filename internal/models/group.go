package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// maxMonths is the upper bound for the recurrence count of a single
// request.
const maxMonths = 120

// EntryTemplate is the user supplied part of a create request. The
// expansion turns one template into the entry drafts of a group.
type EntryTemplate struct {
	Kind             EntryKind
	Description      string
	Amount           decimal.Decimal
	CategoryID       uuid.UUID
	OccurredOn       time.Time // First occurrence. Zero means now.
	Months           int       // Recurrence count. Only honored for recurring kinds.
	RecurringEndDate *time.Time
	Tags             string
}

// ExpandGroup expands a template into the ordered entry drafts of one
// group.
//
// Draft i is dated i calendar months after the first occurrence, with
// the end-of-month overflow behavior of time.Time.AddDate. All drafts
// share a freshly minted group ID, also for a group of size one.
//
// No I/O happens here, the drafts are fully computed before the write
// transaction starts.
func ExpandGroup(ownerID uuid.UUID, template EntryTemplate, now time.Time) ([]Entry, error) {
	months := template.Months
	if !template.Kind.IsRecurring() {
		months = 1
	}

	if months < 1 || months > maxMonths {
		return nil, ErrMonthsInvalid
	}

	start := template.OccurredOn
	if start.IsZero() {
		start = now
	}
	start = start.In(time.UTC)

	groupID := uuid.New()
	drafts := make([]Entry, 0, months)

	for i := 0; i < months; i++ {
		draft := Entry{
			OwnerID:          ownerID,
			GroupID:          groupID,
			Kind:             template.Kind,
			Description:      template.Description,
			Amount:           template.Amount,
			CategoryID:       template.CategoryID,
			OccurredOn:       start.AddDate(0, i, 0),
			RecurringEndDate: template.RecurringEndDate,
			Tags:             template.Tags,
		}

		if err := draft.validate(); err != nil {
			return nil, err
		}

		drafts = append(drafts, draft)
	}

	return drafts, nil
}

// CreateEntryGroup persists the drafts of one group in a single
// transaction. Either all drafts become rows or, when any insert
// fails, the transaction is rolled back and no row is created.
//
// The returned entries are in draft order, which is the insertion
// order.
func CreateEntryGroup(drafts []Entry) ([]Entry, error) {
	created := make([]Entry, 0, len(drafts))

	err := DB.Transaction(func(tx *gorm.DB) error {
		for _, draft := range drafts {
			if err := tx.Create(&draft).Error; err != nil {
				return err
			}

			created = append(created, draft)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrWriteFailed, err)
	}

	return created, nil
}

// ResolveGroup returns all entries sharing the group of the entry with
// the ID, always scoped to the owner. The entry itself is part of the
// returned set.
func ResolveGroup(ownerID uuid.UUID, id uuid.UUID) ([]Entry, error) {
	entry, err := EntryFor(ownerID, id)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	err = DB.
		Where("owner_id = ? AND group_id = ?", ownerID, entry.GroupID).
		Order("datetime(occurred_on) ASC, datetime(created_at) ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// DeleteEntry deletes the entry with the ID, or its whole group when
// wholeGroup is set. The deletion happens in one transaction and
// returns the number of deleted entries.
func DeleteEntry(ownerID uuid.UUID, id uuid.UUID, wholeGroup bool) (int64, error) {
	entry, err := EntryFor(ownerID, id)
	if err != nil {
		return 0, err
	}

	var count int64
	err = DB.Transaction(func(tx *gorm.DB) error {
		q := tx.Where("id = ? AND owner_id = ?", entry.ID, ownerID)
		if wholeGroup {
			q = tx.Where("group_id = ? AND owner_id = ?", entry.GroupID, ownerID)
		}

		res := q.Delete(&Entry{})
		if res.Error != nil {
			return res.Error
		}

		count = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrWriteFailed, err)
	}

	return count, nil
}
