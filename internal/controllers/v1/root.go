package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MatheusVicenteSantosSilva/MoneyMind-2/internal/httputil"
	"github.com/MatheusVicenteSantosSilva/MoneyMind-2/internal/models"
)

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Entries    string `json:"entries" example:"https://example.com/api/v1/entries"`       // URL of the entry endpoints
	Categories string `json:"categories" example:"https://example.com/api/v1/categories"` // URL of the category endpoints
	Aggregates string `json:"aggregates" example:"https://example.com/api/v1/aggregates"` // URL of the aggregate endpoints
}

// RegisterRootRoutes registers the routes for the API root with
// the RouterGroup that is passed.
func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Entries:    url + "/v1/entries",
			Categories: url + "/v1/categories",
			Aggregates: url + "/v1/aggregates",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
