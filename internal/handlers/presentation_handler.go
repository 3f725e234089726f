package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PresentationHandler handles HTTP requests for presentations.
type PresentationHandler struct {
	service *services.PresentationService
}

// NewPresentationHandler creates a new PresentationHandler.
func NewPresentationHandler(service *services.PresentationService) *PresentationHandler {
	return &PresentationHandler{
		service: service,
	}
}

// RegisterRoutes registers the presentation routes with the Fiber app.
func (h *PresentationHandler) RegisterRoutes(router fiber.Router) {
	presentationRoutes := router.Group("/presentations")
	presentationRoutes.Get("/", h.HandleListPresentations)
	presentationRoutes.Post("/", h.HandleCreatePresentation)
	presentationRoutes.Delete("/:id", h.HandleDeletePresentationCascade)
}

// HandleListPresentations retrieves all presentations.
func (h *PresentationHandler) HandleListPresentations(c *fiber.Ctx) error {
	presentations, err := h.service.GetAllPresentations()
	if err != nil {
		log.Printf("Error listing presentations: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve presentations",
			"error":   rootCause(err).Error(),
		})
	}
	return c.JSON(presentations)
}

// HandleCreatePresentation creates a new presentation.
func (h *PresentationHandler) HandleCreatePresentation(c *fiber.Ctx) error {
	var presentation models.Presentation
	if err := c.BodyParser(&presentation); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if presentation.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "the presentation name is required",
		})
	}
	presentation.ID = 0

	if err := h.service.CreatePresentation(&presentation); err != nil {
		log.Printf("Error creating presentation: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":        "an error occurred while saving the presentation, the most likely cause is: " + rootCause(err).Error(),
			"presentation": presentation,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Presentation saved successfully",
		"presentation": presentation,
	})
}

// HandleDeletePresentationCascade deletes a presentation AND every product
// referencing it. This is the only route with cascading behavior; the delete
// is destructive on purpose and callers must know that.
func (h *PresentationHandler) HandleDeletePresentationCascade(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "the presentation id must be a positive integer",
		})
	}

	if err := h.service.DeletePresentationCascade(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Presentation with id %d not found", id),
			})
		}
		log.Printf("Error cascade-deleting presentation %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("an error occurred while deleting presentation %d, the most likely cause is: %v", id, rootCause(err)),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Presentation with id %d and its products deleted successfully", id),
	})
}
