package models_test

import (
	"github.com/MatheusVicenteSantosSilva/MoneyMind-2/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategorySeeding() {
	categories, err := models.CategoriesFor(uuid.New())
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), categories, 8, "A fresh database must contain the shared default categories")

	for _, category := range categories {
		assert.Nil(suite.T(), category.OwnerID, "Seeded categories are shared")
	}
}

func (suite *TestSuiteStandard) TestCategoriesFor() {
	owner := uuid.New()
	other := uuid.New()

	own := suite.createTestCategory(models.Category{Name: "Aquarium", Kind: models.CategoryExpense, OwnerID: &owner})
	suite.createTestCategory(models.Category{Name: "Secret stuff", Kind: models.CategoryExpense, OwnerID: &other})

	categories, err := models.CategoriesFor(owner)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), categories, 9)

	// Ordered by name, "Aquarium" sorts before all seeded defaults.
	assert.Equal(suite.T(), own.ID, categories[0].ID)

	for _, category := range categories {
		assert.NotEqual(suite.T(), "Secret stuff", category.Name, "Categories of other owners must not be visible")
	}
}

func (suite *TestSuiteStandard) TestCategoryFor() {
	owner := uuid.New()
	other := uuid.New()

	own := suite.createTestCategory(models.Category{Kind: models.CategoryIncome, OwnerID: &owner})
	foreign := suite.createTestCategory(models.Category{Kind: models.CategoryIncome, OwnerID: &other})

	category, err := models.CategoryFor(owner, own.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), own.ID, category.ID)

	category, err = models.CategoryFor(owner, suite.sharedCategory("Salary").ID)
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), category.OwnerID)

	_, err = models.CategoryFor(owner, foreign.ID)
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNotAvailable)

	_, err = models.CategoryFor(owner, uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNotAvailable)
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerOwner() {
	owner := uuid.New()

	suite.createTestCategory(models.Category{Name: "Pets", Kind: models.CategoryExpense, OwnerID: &owner})

	duplicate := models.Category{Name: "Pets", Kind: models.CategoryExpense, OwnerID: &owner}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)

	// The same name is fine for a different owner.
	other := uuid.New()
	sameName := models.Category{Name: "Pets", Kind: models.CategoryExpense, OwnerID: &other}
	err = models.DB.Create(&sameName).Error
	assert.NoError(suite.T(), err)
}

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	owner := uuid.New()

	category := suite.createTestCategory(models.Category{Name: "  Books \t", Kind: models.CategoryExpense, OwnerID: &owner})
	assert.Equal(suite.T(), "Books", category.Name)
}
