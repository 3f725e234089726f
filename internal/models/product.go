package models

// Product represents an item in the catalog. Every read path returns the
// product with its presentation already resolved, so consumers never need a
// follow-up fetch.
type Product struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	Name           string        `json:"name" validate:"required,min=4,max=25"`
	Description    string        `json:"description" validate:"required,notblank"`
	Stock          int           `json:"stock" validate:"gte=0"`
	Price          float64       `json:"price" validate:"gte=0"`
	Image          string        `json:"image,omitempty"`
	PresentationID uint          `json:"presentationId"`
	Presentation   *Presentation `json:"presentation,omitempty"`
}
