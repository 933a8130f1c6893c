package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/MatheusVicenteSantosSilva/MoneyMind-2/internal/httputil"
	"github.com/MatheusVicenteSantosSilva/MoneyMind-2/internal/models"
)

// Aggregates are the derived views over all entries of one owner.
type Aggregates struct {
	Balance    decimal.Decimal         `json:"balance" example:"1670.00"` // Income sum minus expense sum
	Income     decimal.Decimal         `json:"income" example:"2500.00"`  // Sum of all income entries
	Expense    decimal.Decimal         `json:"expense" example:"830.00"`  // Sum of all expense entries
	ByCategory []models.CategorySum    `json:"byCategory"`                // Per-category income and expense sums
	Projection models.ProjectionResult `json:"projection"`                // Projected balance for the next month
}

type AggregateResponse struct {
	Error *string     `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  *Aggregates `json:"data"`                                                                // The aggregates
}

// RegisterAggregateRoutes registers the routes for aggregates with
// the RouterGroup that is passed.
func RegisterAggregateRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAggregates)
	r.GET("", GetAggregates)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Aggregates
// @Success		204
// @Router			/v1/aggregates [options]
func OptionsAggregates(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get aggregates
// @Description	Returns the balance, the income and expense totals, the per-category breakdown and the next-month projection for the authenticated owner. All values are computed from the owner's current entries; an owner without entries gets zero on every metric.
// @Tags			Aggregates
// @Produce		json
// @Success		200	{object}	AggregateResponse
// @Failure		500	{object}	AggregateResponse
// @Router			/v1/aggregates [get]
func GetAggregates(c *gin.Context) {
	entries, err := models.ListEntries(ownerID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AggregateResponse{
			Error: &e,
		})
		return
	}

	income, expense := models.Totals(entries)
	balance := income.Sub(expense)

	c.JSON(http.StatusOK, AggregateResponse{
		Data: &Aggregates{
			Balance:    balance,
			Income:     income,
			Expense:    expense,
			ByCategory: models.CategorySums(entries),
			Projection: models.Projection(balance, entries),
		},
	})
}
