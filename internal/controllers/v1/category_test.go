package v1_test

import (
	"net/http"

	v1 "github.com/MatheusVicenteSantosSilva/MoneyMind-2/internal/controllers/v1"
	"github.com/MatheusVicenteSantosSilva/MoneyMind-2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoriesGet() {
	r := test.OwnerRequest(suite.T(), testOwner(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 8, "A fresh database contains the shared default categories")

	for i, category := range response.Data {
		assert.Nil(suite.T(), category.OwnerID, "Seeded categories are shared")
		assert.NotEmpty(suite.T(), category.Links.Self)

		if i > 0 {
			assert.LessOrEqual(suite.T(), response.Data[i-1].Name, category.Name, "Categories must be ordered by name")
		}
	}
}

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	r := test.OwnerRequest(suite.T(), testOwner(), http.MethodOptions, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCategoriesDatabaseError() {
	suite.CloseDB()

	r := test.OwnerRequest(suite.T(), testOwner(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
