package handler

import (
	"errors"
	"strconv"

	"go-inventory-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser handles user creation (admin only)
// POST /user/create
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
	}

	if _, err := h.userService.CreateUser(&req); err != nil {
		// Duplicates and validation problems both come back as
		// success=false with the reason in the message.
		if errors.Is(err, service.ErrUserExists) {
			return c.JSON(fiber.Map{"success": false, "message": "User already exists"})
		}
		return c.JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "User created successfully"})
}

// GetUsers returns all users (admin only)
// GET /user
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching users"})
	}
	return c.JSON(users)
}

// DeleteUser removes a user keyed on (name, establishmentId) (admin only)
// DELETE /user/delete/:name/:establishmentId
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	name := c.Params("name")
	establishmentID, err := strconv.Atoi(c.Params("establishmentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid establishment ID"})
	}

	if err := h.userService.DeleteUser(name, establishmentID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error deleting user"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "User deleted"})
}
