package repositories

import (
	"catalog/internal/models"
)

// ProductRepository defines the interface for product data access. Every
// method that returns products resolves the associated presentation in the
// same query.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetPage(page, size int) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
}
