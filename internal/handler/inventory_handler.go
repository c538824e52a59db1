package handler

import (
	"errors"

	"go-inventory-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	inventoryService service.InventoryService
}

func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// RecordEvent appends one inventory event to the role-selected ledger
// POST /inventory/inventory
func (h *InventoryHandler) RecordEvent(c *fiber.Ctx) error {
	var event service.InventoryEvent
	if err := c.BodyParser(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	if err := h.inventoryService.RecordEvent(c.Context(), &event); err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid data type for quantity."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Inventory added to Google Sheets successfully."})
}

// RecentProductRequest carries the actor whose last write is wanted.
type RecentProductRequest struct {
	Username string `json:"username"`
}

// RecentProduct returns the product name of the user's newest ledger row
// POST /inventory/recentproduct
func (h *InventoryHandler) RecentProduct(c *fiber.Ctx) error {
	var req RecentProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON"})
	}
	if req.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Username is required."})
	}

	lastProduct, err := h.inventoryService.LastProductAdded(c.Context(), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLedgerEmpty):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No data found in the sheet."})
		case errors.Is(err, service.ErrNoRecentProduct):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No records found for this user."})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to access Google Sheet", "error": err.Error()})
		}
	}

	return c.JSON(fiber.Map{
		"message":     "Last product added retrieved successfully.",
		"lastProduct": lastProduct,
	})
}
