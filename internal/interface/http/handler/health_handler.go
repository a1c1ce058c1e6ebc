package handler

import "github.com/gofiber/fiber/v2"

const (
	ServiceName    = "Account REST API Service"
	ServiceVersion = "1.0"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.health)
	router.Get("/", h.index)
}

func (h *HealthHandler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "OK"})
}

func (h *HealthHandler) index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    ServiceName,
		"version": ServiceVersion,
	})
}
