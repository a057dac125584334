package viewmodel

import "github.com/gofiber/fiber/v2"

type Layout struct {
	Page string
	Msg  fiber.Map
	CSRF string
}
