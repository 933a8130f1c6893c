package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryKind determines whether a category groups income or expenses.
type CategoryKind string

const (
	CategoryIncome  CategoryKind = "income"
	CategoryExpense CategoryKind = "expense"
)

// Category is a label that ledger entries reference.
//
// Categories with a nil OwnerID are shared defaults that are visible
// to every user. Categories with an OwnerID are only visible to that
// user.
type Category struct {
	DefaultModel
	Name    string `gorm:"uniqueIndex:category_name_owner"`
	Kind    CategoryKind
	OwnerID *uuid.UUID `gorm:"uniqueIndex:category_name_owner"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// CategoriesFor returns the categories visible to the owner: the shared
// defaults plus the owner's own categories, ordered by name.
func CategoriesFor(ownerID uuid.UUID) ([]Category, error) {
	var categories []Category
	err := DB.
		Where("owner_id IS NULL OR owner_id = ?", ownerID).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// CategoryFor returns the category with the ID if it is visible to the
// owner. It returns ErrCategoryNotAvailable both when the category does
// not exist and when it belongs to another user so that callers cannot
// probe for other users' categories.
func CategoryFor(ownerID uuid.UUID, id uuid.UUID) (Category, error) {
	var category Category
	err := DB.
		Where("id = ? AND (owner_id IS NULL OR owner_id = ?)", id, ownerID).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrResourceNotFound) {
			return Category{}, ErrCategoryNotAvailable
		}
		return Category{}, err
	}

	return category, nil
}

// defaultCategories are seeded as shared defaults on a fresh database.
var defaultCategories = []Category{
	{Name: "Salary", Kind: CategoryIncome},
	{Name: "Investments", Kind: CategoryIncome},
	{Name: "Housing", Kind: CategoryExpense},
	{Name: "Groceries", Kind: CategoryExpense},
	{Name: "Transport", Kind: CategoryExpense},
	{Name: "Health", Kind: CategoryExpense},
	{Name: "Leisure", Kind: CategoryExpense},
	{Name: "Other", Kind: CategoryExpense},
}

// seedCategories creates the shared default categories when the
// category table is empty.
func seedCategories(db *gorm.DB) error {
	var count int64
	err := db.Model(&Category{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	for _, category := range defaultCategories {
		if err := db.Create(&category).Error; err != nil {
			return err
		}
	}

	return nil
}
