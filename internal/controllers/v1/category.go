package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MatheusVicenteSantosSilva/MoneyMind-2/internal/httputil"
	"github.com/MatheusVicenteSantosSilva/MoneyMind-2/internal/models"
)

type CategoryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/categories/d27b71b1-1b9d-4333-98b1-d84d7be55274"` // The category itself
}

// Category is the representation of a category in API v1. Categories
// without an owner are shared defaults visible to every user.
type Category struct {
	models.DefaultModel
	Name    string              `json:"name" example:"Groceries"` // Name of the category
	Kind    models.CategoryKind `json:"kind" example:"expense"`   // Whether the category groups income or expenses
	OwnerID *uuid.UUID          `json:"ownerId"`                  // Owner of the category. Null for shared defaults.
	Links   CategoryLinks       `json:"links"`
}

// newCategory returns the API v1 representation of the resource
func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Kind:         model.Kind,
		OwnerID:      model.OwnerID,
		Links: CategoryLinks{
			Self: fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Error *string    `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  []Category `json:"data"`                                                                // List of categories
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategories)
	r.GET("", GetCategories)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns the shared default categories and the authenticated owner's own categories, ordered by name
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	categories, err := models.CategoriesFor(ownerID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}
