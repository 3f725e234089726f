package services

import (
	"log"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/rabbitmq"
)

// ProductService handles business logic related to products. It is a thin
// layer over the repository; its only addition is best-effort catalog event
// publication on writes.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client
}

// NewProductService creates a new ProductService. mqClient may be nil, in
// which case no events are published.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAllProducts retrieves all products sorted by name.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductPage retrieves one 0-indexed page of products sorted by name.
func (s *ProductService) GetProductPage(page, size int) ([]models.Product, error) {
	return s.repo.GetPage(page, size)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct persists a new product and publishes a product.created event.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.publishEvent("product.created", product)
	return nil
}

// UpdateProduct overwrites an existing product and publishes a
// product.updated event.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.publishEvent("product.updated", product)
	return nil
}

// DeleteProduct deletes a product by its ID and publishes a product.deleted
// event. Deleting a missing ID reports repositories.ErrNotFound.
func (s *ProductService) DeleteProduct(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publishEvent("product.deleted", &models.Product{ID: id})
	return nil
}

// publishEvent sends a catalog event if a RabbitMQ client is configured.
// Publish failures are logged and never fail the enclosing operation.
func (s *ProductService) publishEvent(event string, product *models.Product) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]interface{}{
		"productID": product.ID,
		"name":      product.Name,
	}
	if err := s.mqClient.PublishCatalogEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for product %d: %v", event, product.ID, err)
	}
}
