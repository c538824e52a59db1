package handler

import (
	"errors"

	"go-inventory-ledger/internal/model"
	"go-inventory-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// LookupRequest carries the identifier submitted by the barcode scanner UI;
// the field is named barcode but may hold a SKU.
type LookupRequest struct {
	Barcode string `json:"barcode"`
}

// Lookup fetches a product by barcode or SKU
// POST /product
func (h *ProductHandler) Lookup(c *fiber.Ctx) error {
	var req LookupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Barcode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Barcode is required"})
	}

	product, err := h.productService.FindByIdentifier(req.Barcode)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while fetching the product"})
	}

	return c.JSON(product)
}

// SubmitProduct appends product details to the count sheet
// POST /product/submit-product
func (h *ProductHandler) SubmitProduct(c *fiber.Ctx) error {
	var req service.AddProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.productService.SubmitProduct(c.Context(), &req); err != nil {
		if errors.Is(err, service.ErrMissingProductFields) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write product details to Google Sheets"})
	}

	return c.JSON(fiber.Map{"message": "Product details successfully saved to Google Sheets"})
}

// AddProduct inserts a fully described product into the directory
// POST /product/add-product
func (h *ProductHandler) AddProduct(c *fiber.Ctx) error {
	var req service.AddProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.productService.AddProduct(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingProductFields), errors.Is(err, service.ErrInvalidExpireDate):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while adding the product"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"savedProduct": product,
		"message":      "Product added successfully",
	})
}

// Search returns up to 5 products matching the name query
// GET /product/search
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	return h.search(c, false)
}

// SearchWithSKU is the same search excluding records without a SKU
// GET /product/search2
func (h *ProductHandler) SearchWithSKU(c *fiber.Ctx) error {
	return h.search(c, true)
}

func (h *ProductHandler) search(c *fiber.Ctx, excludeEmptySKU bool) error {
	query := c.Query("query")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query parameter is required"})
	}

	products, err := h.productService.Search(query, excludeEmptySKU)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error while searching products"})
	}

	// Always return an array
	if products == nil {
		products = []model.ProductSummary{}
	}
	return c.JSON(products)
}
