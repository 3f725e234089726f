package repositories

import (
	"catalog/internal/models"
)

// PresentationRepository defines the interface for presentation data access.
// Presentations are a small, read-mostly set of categories.
type PresentationRepository interface {
	GetAll() ([]models.Presentation, error)
	GetByID(id uint) (*models.Presentation, error)
	Create(presentation *models.Presentation) error
	// DeleteCascade deletes the presentation AND every product that
	// references it, in one transaction. It is deliberately not named
	// Delete so callers cannot trigger the cascade by accident.
	DeleteCascade(id uint) error
}
