package utils

import (
	"film-catalog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// JSONResponse sends data as the response body without an envelope.
func JSONResponse(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(data)
}

// ErrorResponse sends {"error": message}.
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(models.ErrorResponse{Error: message})
}

// MessageResponse sends {"message": message}.
func MessageResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(models.DeleteResponse{Message: message})
}
