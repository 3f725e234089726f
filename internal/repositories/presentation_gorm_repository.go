package repositories

import (
	"errors"
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMPresentationRepository is a GORM implementation of PresentationRepository.
type GORMPresentationRepository struct {
	db *gorm.DB
}

// NewGORMPresentationRepository creates a new instance of GORMPresentationRepository.
func NewGORMPresentationRepository(db *gorm.DB) *GORMPresentationRepository {
	return &GORMPresentationRepository{
		db: db,
	}
}

// GetAll retrieves all presentations, sorted ascending by name.
func (r *GORMPresentationRepository) GetAll() ([]models.Presentation, error) {
	var presentations []models.Presentation
	if err := r.db.Order("name asc").Find(&presentations).Error; err != nil {
		return nil, fmt.Errorf("failed to get all presentations: %w", err)
	}
	return presentations, nil
}

// GetByID retrieves a single presentation by its ID.
func (r *GORMPresentationRepository) GetByID(id uint) (*models.Presentation, error) {
	var presentation models.Presentation
	if err := r.db.First(&presentation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("presentation with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get presentation by ID %d: %w", id, err)
	}
	return &presentation, nil
}

// Create persists a new presentation.
func (r *GORMPresentationRepository) Create(presentation *models.Presentation) error {
	if err := r.db.Create(presentation).Error; err != nil {
		return fmt.Errorf("failed to create presentation: %w", err)
	}
	return nil
}

// DeleteCascade removes a presentation together with every product that
// references it. Both deletes run in the same transaction so a failure leaves
// the catalog untouched.
func (r *GORMPresentationRepository) DeleteCascade(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Products first, so the foreign key never sees a dangling reference.
		if err := tx.Where("presentation_id = ?", id).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Presentation{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("presentation with ID %d: %w", id, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to cascade delete presentation: %w", err)
	}
	return nil
}
