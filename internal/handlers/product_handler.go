package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/pkg/filestore"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products, including the image
// upload/download side channel.
type ProductHandler struct {
	service  *services.ProductService
	store    *filestore.Store
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, store *filestore.Store) *ProductHandler {
	return &ProductHandler{
		service:  service,
		store:    store,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/downloadFile/:code", h.HandleDownloadFile)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleListProducts returns products sorted ascending by name. When both
// page and size are given it returns that 0-indexed page; pages past the end
// come back as an empty list. Otherwise it returns everything.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	pageParam := c.Query("page")
	sizeParam := c.Query("size")

	var products []models.Product
	var err error

	if pageParam != "" && sizeParam != "" {
		page, pageErr := strconv.Atoi(pageParam)
		size, sizeErr := strconv.Atoi(sizeParam)
		if pageErr != nil || sizeErr != nil || page < 0 || size < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "page and size must be non-negative integers",
			})
		}
		products, err = h.service.GetProductPage(page, size)
	} else {
		products, err = h.service.GetAllProducts()
	}

	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   rootCause(err).Error(),
		})
	}
	return c.JSON(products)
}

// HandleCreateProduct persists a new product from a multipart request: a
// "product" part carrying the product JSON plus an optional "file" part with
// its image. An image save failure is reported as a warning but never blocks
// the product from being saved.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	productPart := c.FormValue("product")
	if productPart == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "multipart field 'product' with the product JSON is required",
		})
	}

	var product models.Product
	if err := json.Unmarshal([]byte(productPart), &product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product JSON",
			"error":   err.Error(),
		})
	}
	// IDs are never client-settable on create.
	product.ID = 0

	if err := h.validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors":  productValidationMessages(err),
			"product": product,
		})
	}

	response := fiber.Map{}

	if file, err := c.FormFile("file"); err == nil && file != nil {
		src, openErr := file.Open()
		if openErr != nil {
			log.Printf("Warning: could not open uploaded image %s: %v", file.Filename, openErr)
			response["warning"] = "the product image could not be saved, the product was saved without it"
		} else {
			code, saveErr := h.store.Save(file.Filename, src)
			src.Close()
			if saveErr != nil {
				log.Printf("Warning: could not save uploaded image %s: %v", file.Filename, saveErr)
				response["warning"] = "the product image could not be saved, the product was saved without it"
			} else {
				product.Image = code + "-" + file.Filename
				response["file"] = models.FileUploadResponse{
					FileName:    product.Image,
					DownloadURI: "/products/downloadFile/" + code,
					Size:        file.Size,
				}
			}
		}
	}

	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "an error occurred while saving the product, the most likely cause is: " + rootCause(err).Error(),
			"product": product,
		})
	}

	response["message"] = "Product saved successfully"
	response["product"] = product
	return c.Status(fiber.StatusCreated).JSON(response)
}

// HandleUpdateProduct overwrites an existing product in full. The path id
// always wins over any id embedded in the body.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "the product id must be a positive integer",
		})
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors":  productValidationMessages(err),
			"product": product,
		})
	}

	product.ID = id
	if err := h.service.UpdateProduct(&product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with id %d not found", id),
			})
		}
		log.Printf("Error updating product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "an error occurred while updating the product, the most likely cause is: " + rootCause(err).Error(),
			"product": product,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Product updated successfully",
		"product": product,
	})
}

// HandleGetProductByID retrieves a single product with its presentation.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "the product id must be a positive integer",
		})
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with id %d not found", id),
			})
		}
		log.Printf("Error getting product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("an error occurred while looking up product %d, the most likely cause is: %v", id, rootCause(err)),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product with id %d found", id),
		"product": product,
	})
}

// HandleDeleteProduct deletes a product by its ID. Deleting a missing id is a
// guarded no-op answered with 404, never an unhandled fault.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "the product id must be a positive integer",
		})
	}

	if err := h.service.DeleteProduct(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with id %d not found", id),
			})
		}
		log.Printf("Error deleting product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("an error occurred while deleting product %d, the most likely cause is: %v", id, rootCause(err)),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product with id %d deleted successfully", id),
	})
}

// HandleDownloadFile serves a previously uploaded image strictly by its
// storage code, as a generic binary attachment carrying the original
// filename. A missing file and an I/O failure are distinguishable (404 vs 500).
func (h *ProductHandler) HandleDownloadFile(c *fiber.Ctx) error {
	code := c.Params("code")

	path, filename, err := h.store.Resolve(code)
	if err != nil {
		if errors.Is(err, filestore.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "File not found",
			})
		}
		log.Printf("Error resolving file %s: %v", code, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "an error occurred while reading the file",
		})
	}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("Error opening file %s: %v", path, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "an error occurred while reading the file",
		})
	}

	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/octet-stream")
	return c.SendStream(f)
}

// parseID reads the :id path parameter as an unsigned integer.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
