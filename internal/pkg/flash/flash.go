// Package flash renders one-shot toast messages across a redirect.
package flash

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
)

const (
	TypeError   = "error"
	TypeSuccess = "success"
)

// Error stores an error toast and redirects to location.
func Error(c *fiber.Ctx, message, location string) error {
	return flash.WithError(c, toast(TypeError, message)).Redirect(location)
}

// Success stores a success toast and redirects to location.
func Success(c *fiber.Ctx, message, location string) error {
	return flash.WithSuccess(c, toast(TypeSuccess, message)).Redirect(location)
}

// Get retrieves the toast of the previous request, if any.
func Get(c *fiber.Ctx) fiber.Map {
	return flash.Get(c)
}

func toast(kind, message string) fiber.Map {
	return fiber.Map{
		"type":    kind,
		"message": message,
	}
}
