package models

// Presentation is a unit-of-sale category (e.g. "unit", "dozen") referenced by
// many products. Deleting one is destructive: it takes every referencing
// product with it, through the explicit cascade operation on the repository.
type Presentation struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	Products    []Product `json:"-"`
}
