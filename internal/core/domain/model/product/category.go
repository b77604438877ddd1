package product

import (
	"farmmarket/internal/pkg/errs"
)

// Category groups listings for browsing and search.
type Category string

const (
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryDairy      Category = "dairy"
	CategoryMeat       Category = "meat"
	CategoryEggs       Category = "eggs"
	CategoryGrains     Category = "grains"
	CategoryOther      Category = "other"
)

// CategoryFromString parses a category from its string form.
func CategoryFromString(s string) (Category, error) {
	c := Category(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate checks that the category is one of the known values.
func (c Category) Validate() error {
	switch c {
	case CategoryVegetables, CategoryFruits, CategoryDairy,
		CategoryMeat, CategoryEggs, CategoryGrains, CategoryOther:
		return nil
	default:
		return errs.NewValueIsInvalidError("category")
	}
}

// String returns the string form of the category.
func (c Category) String() string {
	return string(c)
}
