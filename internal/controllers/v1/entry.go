package v1

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/MatheusVicenteSantosSilva/MoneyMind-2/internal/httputil"
	"github.com/MatheusVicenteSantosSilva/MoneyMind-2/internal/models"
)

// updateableFields are the entry fields that a PATCH may change.
// Updates are always single-row, they never propagate to the other
// entries of a group.
var updateableFields = []any{"Description", "Amount", "CategoryID", "RecurringEndDate", "Tags"}

// RegisterEntryRoutes registers the routes for entries with
// the RouterGroup that is passed.
func RegisterEntryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsEntries)
		r.GET("", GetEntries)
		r.POST("", CreateEntryGroup)
	}

	// Entry with ID
	{
		r.OPTIONS("/:id", OptionsEntryDetail)
		r.GET("/:id", GetEntry)
		r.GET("/:id/group", GetEntryGroup)
		r.PATCH("/:id", UpdateEntry)
		r.DELETE("/:id", DeleteEntry)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Router			/v1/entries [options]
func OptionsEntries(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/entries/{id} [options]
func OptionsEntryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = models.EntryFor(ownerID(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create entries
// @Description	Creates the ledger entries for one request. A recurring kind with months set to N creates N entries, one per month, that share a group ID. All entries are created in one transaction: either all of them exist afterwards or none.
// @Tags			Entries
// @Accept			json
// @Produce		json
// @Success		201		{object}	EntryCreateResponse
// @Failure		400		{object}	EntryCreateResponse
// @Failure		500		{object}	EntryCreateResponse
// @Param			entry	body		EntryEditable	true	"Entry"
// @Router			/v1/entries [post]
func CreateEntryGroup(c *gin.Context) {
	var editable EntryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryCreateResponse{
			Error: &e,
		})
		return
	}

	owner := ownerID(c)

	// Resolve the category before anything is written. The expansion
	// itself never performs I/O.
	_, err = models.CategoryFor(owner, editable.CategoryID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryCreateResponse{
			Error: &e,
		})
		return
	}

	drafts, err := models.ExpandGroup(owner, editable.template(), time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryCreateResponse{
			Error: &e,
		})
		return
	}

	created, err := models.CreateEntryGroup(drafts)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryCreateResponse{
			Error: &e,
		})
		return
	}

	data := make([]Entry, 0, len(created))
	for i, entry := range created {
		e := newEntry(c, entry)
		e.Installment = fmt.Sprintf("%d/%d", i+1, len(created))
		data = append(data, e)
	}

	c.JSON(http.StatusCreated, EntryCreateResponse{
		GroupID: &created[0].GroupID,
		Data:    data,
	})
}

// @Summary		Get entry
// @Description	Returns a specific entry of the authenticated owner
// @Tags			Entries
// @Produce		json
// @Success		200	{object}	EntryResponse
// @Failure		400	{object}	EntryResponse
// @Failure		404	{object}	EntryResponse
// @Failure		500	{object}	EntryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/entries/{id} [get]
func GetEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &e,
		})
		return
	}

	entry, err := models.EntryFor(ownerID(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &e,
		})
		return
	}

	data := newEntry(c, entry)
	c.JSON(http.StatusOK, EntryResponse{Data: &data})
}

// @Summary		Get entry group
// @Description	Returns all entries that were created together with the specified entry, ordered by date. The entry itself is part of the returned list.
// @Tags			Entries
// @Produce		json
// @Success		200	{object}	EntryListResponse
// @Failure		400	{object}	EntryListResponse
// @Failure		404	{object}	EntryListResponse
// @Failure		500	{object}	EntryListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/entries/{id}/group [get]
func GetEntryGroup(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryListResponse{
			Error: &e,
		})
		return
	}

	entries, err := models.ResolveGroup(ownerID(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		data = append(data, newEntry(c, entry))
	}

	c.JSON(http.StatusOK, EntryListResponse{Data: data})
}

// @Summary		Get entries
// @Description	Returns the entries of the authenticated owner, newest first
// @Tags			Entries
// @Produce		json
// @Success		200	{object}	EntryListResponse
// @Failure		400	{object}	EntryListResponse
// @Failure		500	{object}	EntryListResponse
// @Router			/v1/entries [get]
// @Param			kind		query	string	false	"Filter by entry kind"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			fromDate	query	string	false	"Entries at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			untilDate	query	string	false	"Entries before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			description	query	string	false	"Filter by description"
// @Param			tags		query	string	false	"Filter by tags"
func GetEntries(c *gin.Context) {
	var filter EntryQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, EntryListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Preload("Category").
		Where("entries.owner_id = ?", ownerID(c)).
		Order("datetime(entries.occurred_on) DESC, datetime(entries.created_at) DESC").
		Where(filter.model(), queryFields...)

	if filter.Kind != "" {
		if !slices.Contains(models.Kinds(), filter.Kind) {
			s := errEntryKindInvalid.Error()
			c.JSON(http.StatusBadRequest, EntryListResponse{
				Error: &s,
			})
			return
		}

		q = q.Where("entries.kind = ?", filter.Kind)
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("entries.occurred_on >= date(?)", time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("entries.occurred_on < date(?)", time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	if filter.Description != "" {
		q = q.Where("entries.description LIKE ?", fmt.Sprintf("%%%s%%", filter.Description))
	} else if slices.Contains(setFields, "Description") {
		q = q.Where("entries.description = ''")
	}

	if filter.Tags != "" {
		q = q.Where("entries.tags LIKE ?", fmt.Sprintf("%%%s%%", filter.Tags))
	}

	var entries []models.Entry
	err := q.Find(&entries).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Entry, 0)
	for _, entry := range entries {
		data = append(data, newEntry(c, entry))
	}

	c.JSON(http.StatusOK, EntryListResponse{Data: data})
}

// @Summary		Update entry
// @Description	Updates a single existing entry. Only values to be updated need to be specified, and only the description, amount, category, tags and recurring end date can be changed. The update never touches the other entries of the group.
// @Tags			Entries
// @Accept			json
// @Produce		json
// @Success		200		{object}	EntryResponse
// @Failure		400		{object}	EntryResponse
// @Failure		404		{object}	EntryResponse
// @Failure		500		{object}	EntryResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			entry	body		EntryEditable	true	"Entry"
// @Router			/v1/entries/{id} [patch]
func UpdateEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &e,
		})
		return
	}

	owner := ownerID(c)

	entry, err := models.EntryFor(owner, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	bodyFields, err := httputil.GetBodyFields(c, EntryEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &e,
		})
		return
	}

	// Restrict the update to the fields that may change. Everything
	// else in the body, including the kind and the date, is ignored.
	updateFields := make([]any, 0, len(bodyFields))
	for _, field := range bodyFields {
		if slices.Contains(updateableFields, field) {
			updateFields = append(updateFields, field)
		}
	}

	if len(updateFields) == 0 {
		e := models.ErrNoUpdateableFieldsSet.Error()
		c.JSON(http.StatusBadRequest, EntryResponse{
			Error: &e,
		})
		return
	}

	// Bind the update for the patch
	var update EntryEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &e,
		})
		return
	}

	err = validateUpdate(owner, update, updateFields)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&entry).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &e,
		})
		return
	}

	data := newEntry(c, entry)
	c.JSON(http.StatusOK, EntryResponse{Data: &data})
}

// validateUpdate checks the fields an update sets before any write
// happens.
func validateUpdate(owner uuid.UUID, update EntryEditable, updateFields []any) error {
	if slices.Contains(updateFields, "Description") && strings.TrimSpace(update.Description) == "" {
		return models.ErrDescriptionRequired
	}

	if slices.Contains(updateFields, "Amount") {
		if !update.Amount.IsPositive() {
			return models.ErrAmountNotPositive
		}

		if !update.Amount.Equal(update.Amount.Round(2)) {
			return models.ErrAmountPrecision
		}
	}

	if slices.Contains(updateFields, "CategoryID") {
		_, err := models.CategoryFor(owner, update.CategoryID)
		if err != nil {
			return err
		}
	}

	return nil
}

// @Summary		Delete entry
// @Description	Deletes an entry. With the group parameter set to true, the entry's whole group is deleted atomically. The response reports how many entries were deleted.
// @Tags			Entries
// @Produce		json
// @Success		200		{object}	EntryDeletionResponse
// @Failure		400		{object}	EntryDeletionResponse
// @Failure		404		{object}	EntryDeletionResponse
// @Failure		500		{object}	EntryDeletionResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			group	query		bool	false	"Delete the entry's whole group"
// @Router			/v1/entries/{id} [delete]
func DeleteEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryDeletionResponse{
			Error: &e,
		})
		return
	}

	wholeGroup := c.Query("group") == "true"

	count, err := models.DeleteEntry(ownerID(c), uri.ID.UUID, wholeGroup)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryDeletionResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, EntryDeletionResponse{
		Data: &EntryDeletion{Count: count},
	})
}
