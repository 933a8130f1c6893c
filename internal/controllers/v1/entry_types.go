package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusVicenteSantosSilva/MoneyMind-2/internal/models"
	mm_uuid "github.com/MatheusVicenteSantosSilva/MoneyMind-2/internal/uuid"
)

// EntryEditable are the fields of an entry that the owner can set.
type EntryEditable struct {
	Kind        models.EntryKind `json:"kind" example:"recurring_debit"`                            // Kind of the entry
	Description string           `json:"description" example:"Rent"`                                // What the entry is about
	Amount      decimal.Decimal  `json:"amount" example:"750.00" minimum:"0.01" multipleOf:"0.01"`  // The amount, always positive
	CategoryID  uuid.UUID        `json:"categoryId" example:"d27b71b1-1b9d-4333-98b1-d84d7be55274"` // ID of the category
	OccurredOn  time.Time        `json:"occurredOn" example:"2024-02-10T00:00:00Z"`                 // Effective date. Defaults to the request time.

	// Months is the recurrence count. It is only honored for
	// recurring kinds and must be between 1 and 120. It is a request
	// field only and not returned on entries.
	Months int `json:"months,omitempty" example:"12" minimum:"1" maximum:"120"`

	RecurringEndDate *time.Time `json:"recurringEndDate" example:"2025-02-10T00:00:00Z"` // Informational end of the recurrence
	Tags             string     `json:"tags" example:"fixed,household" default:""`       // Free text tags
}

// template returns the expansion template for the editable fields.
func (editable EntryEditable) template() models.EntryTemplate {
	return models.EntryTemplate{
		Kind:             editable.Kind,
		Description:      editable.Description,
		Amount:           editable.Amount,
		CategoryID:       editable.CategoryID,
		OccurredOn:       editable.OccurredOn,
		Months:           editable.Months,
		RecurringEndDate: editable.RecurringEndDate,
		Tags:             editable.Tags,
	}
}

// model returns the database resource for the API representation of the editable fields
func (editable EntryEditable) model() models.Entry {
	return models.Entry{
		Kind:             editable.Kind,
		Description:      editable.Description,
		Amount:           editable.Amount,
		CategoryID:       editable.CategoryID,
		OccurredOn:       editable.OccurredOn,
		RecurringEndDate: editable.RecurringEndDate,
		Tags:             editable.Tags,
	}
}

type EntryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/entries/d430d7c3-d14c-4712-9336-ee56965a6673"` // The entry itself
}

// Entry is the representation of a ledger entry in API v1.
type Entry struct {
	models.DefaultModel
	EntryEditable
	GroupID uuid.UUID `json:"groupId" example:"00c2d93e-0e39-4f32-9d87-05bf3f7b5bc5"` // Group the entry was created with

	// Installment is the position of the entry within its group as
	// "k/N". It is only set in create responses and never persisted.
	Installment string `json:"installment,omitempty" example:"2/12"`

	Links EntryLinks `json:"links"`
}

// newEntry returns the API v1 representation of the resource
func newEntry(c *gin.Context, model models.Entry) Entry {
	url := c.GetString(string(models.DBContextURL))

	return Entry{
		DefaultModel: model.DefaultModel,
		EntryEditable: EntryEditable{
			Kind:             model.Kind,
			Description:      model.Description,
			Amount:           model.Amount,
			CategoryID:       model.CategoryID,
			OccurredOn:       model.OccurredOn,
			RecurringEndDate: model.RecurringEndDate,
			Tags:             model.Tags,
		},
		GroupID: model.GroupID,
		Links: EntryLinks{
			Self: fmt.Sprintf("%s/v1/entries/%s", url, model.ID),
		},
	}
}

type EntryResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Entry  `json:"data"`                                                          // The entry data
}

type EntryListResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []Entry `json:"data"`                                                          // List of entries
}

type EntryCreateResponse struct {
	Error   *string    `json:"error" example:"invalid number of months, must be between 1 and 120"` // The error, if any occurred
	GroupID *uuid.UUID `json:"groupId" example:"00c2d93e-0e39-4f32-9d87-05bf3f7b5bc5"`              // Group shared by all created entries
	Data    []Entry    `json:"data"`                                                                // The created entries in order, annotated with their installment
}

type EntryDeletion struct {
	Count int64 `json:"count" example:"6"` // Number of deleted entries
}

type EntryDeletionResponse struct {
	Error *string        `json:"error" example:"there is no entry matching your query"` // The error, if any occurred
	Data  *EntryDeletion `json:"data"`                                                  // The deletion result
}

type EntryQueryFilter struct {
	Kind        models.EntryKind `form:"kind" filterField:"false"`        // Filter by entry kind
	CategoryID  mm_uuid.UUID     `form:"category"`                        // Filter by category ID
	FromDate    time.Time        `form:"fromDate" filterField:"false"`    // Entries at and after this date. Time is ignored.
	UntilDate   time.Time        `form:"untilDate" filterField:"false"`   // Entries before and at this date. Time is ignored.
	Description string           `form:"description" filterField:"false"` // Description contains this string
	Tags        string           `form:"tags" filterField:"false"`        // Tags contain this string
}

func (f EntryQueryFilter) model() models.Entry {
	// This does not set the string or date fields since they are
	// handled in the controller function
	return models.Entry{
		CategoryID: f.CategoryID.UUID,
	}
}
