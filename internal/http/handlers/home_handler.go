package handlers

import (
	"github.com/gofiber/fiber/v2"

	"dealership/internal/services"
)

const featuredCount = 6

type HomeHandler struct {
	Catalog *services.CatalogService
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	meta := h.Catalog.Metadata()
	return render(c, "home", fiber.Map{
		"Featured": h.Catalog.Featured(featuredCount),
		"Brands":   meta.Brands,
		"Types":    typeOptions,
		"Bodies":   bodyOptions,
		"Total":    h.Catalog.Vehicles.Len(),
	})
}
