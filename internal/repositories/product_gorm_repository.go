package repositories

import (
	"errors"
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves every product, sorted ascending by name, with its
// presentation loaded in the same query.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Presentation").Order("name asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetPage retrieves one 0-indexed page of at most size products, sorted
// ascending by name. Pages beyond the available data come back empty, not as
// an error.
func (r *GORMProductRepository) GetPage(page, size int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Presentation").
		Order("name asc").
		Offset(page * size).
		Limit(size).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get product page %d (size %d): %w", page, size, err)
	}
	return products, nil
}

// GetByID retrieves a single product with its presentation.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Presentation").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Create persists a new product inside a single transaction and reloads it so
// the returned value carries the generated ID and the resolved presentation.
func (r *GORMProductRepository) Create(product *models.Product) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Omit the association so a presentation object in the input can
		// never write to the presentations table; only PresentationID counts.
		if err := tx.Omit("Presentation").Create(product).Error; err != nil {
			return err
		}
		return tx.Preload("Presentation").First(product, product.ID).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update overwrites an existing product in full inside a single transaction.
func (r *GORMProductRepository) Update(product *models.Product) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{ID: product.ID}).Select("*").Omit("id", "Presentation").Updates(product)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// GORM does not return ErrRecordNotFound for an update that
			// matched no rows, so we check RowsAffected ourselves.
			return fmt.Errorf("product with ID %d: %w", product.ID, ErrNotFound)
		}
		return tx.Preload("Presentation").First(product, product.ID).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// Delete removes a product by its ID. Deleting a missing ID is a no-op
// reported as ErrNotFound, never an unguarded delete.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
