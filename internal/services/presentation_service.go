package services

import (
	"catalog/internal/models"
	"catalog/internal/repositories"
)

// PresentationService handles business logic related to presentations.
type PresentationService struct {
	repo repositories.PresentationRepository
}

// NewPresentationService creates a new PresentationService.
func NewPresentationService(repo repositories.PresentationRepository) *PresentationService {
	return &PresentationService{
		repo: repo,
	}
}

// GetAllPresentations retrieves all presentations.
func (s *PresentationService) GetAllPresentations() ([]models.Presentation, error) {
	return s.repo.GetAll()
}

// GetPresentationByID retrieves a single presentation by its ID.
func (s *PresentationService) GetPresentationByID(id uint) (*models.Presentation, error) {
	return s.repo.GetByID(id)
}

// CreatePresentation creates a new presentation.
func (s *PresentationService) CreatePresentation(presentation *models.Presentation) error {
	return s.repo.Create(presentation)
}

// DeletePresentationCascade deletes a presentation together with every
// product referencing it. Destructive; callers must opt in knowingly.
func (s *PresentationService) DeletePresentationCascade(id uint) error {
	return s.repo.DeleteCascade(id)
}
