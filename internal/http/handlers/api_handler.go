package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"dealership/internal/catalog"
	"dealership/internal/domain"
	applog "dealership/internal/log"
	"dealership/internal/services"
	"dealership/internal/validate"
)

// APIHandler serves the JSON endpoints under /api/v1.
type APIHandler struct {
	Catalog   *services.CatalogService
	Leads     *services.LeadService
	Favorites *services.FavoritesService
}

type searchResponse struct {
	catalog.Result
	Query      string         `json:"query"`
	ShareQuery string         `json:"shareQuery"`
	Chips      []catalog.Chip `json:"chips"`
}

func (h *APIHandler) Vehicles(c *fiber.Ctx) error {
	res := search(c, h.Catalog)
	chips := catalog.Chips(res.Applied)
	if chips == nil {
		chips = []catalog.Chip{}
	}
	return c.JSON(searchResponse{
		Result:     res,
		Query:      res.Applied.Query(false),
		ShareQuery: res.Applied.Query(true),
		Chips:      chips,
	})
}

func (h *APIHandler) Vehicle(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.Params("slug"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "slug"})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	v, found := h.Catalog.Vehicle(slug)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.JSON(fiber.Map{
		"vehicle":    v,
		"related":    h.Catalog.Related(v, relatedCount),
		"viewingNow": services.ViewingNow(v.Slug),
	})
}

func (h *APIHandler) Filters(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.Metadata())
}

// Models is the brand -> model cascade of the filter sidebar.
func (h *APIHandler) Models(c *fiber.Ctx) error {
	brand := c.Query(catalog.ParamBrand)
	return c.JSON(fiber.Map{"brand": brand, "models": nonNil(h.Catalog.Metadata().ModelsFor(brand))})
}

func (h *APIHandler) Versions(c *fiber.Ctx) error {
	brand, model := c.Query(catalog.ParamBrand), c.Query(catalog.ParamModel)
	return c.JSON(fiber.Map{
		"brand":    brand,
		"model":    model,
		"versions": nonNil(h.Catalog.Metadata().VersionsFor(brand, model)),
	})
}

func (h *APIHandler) Compare(c *fiber.Ctx) error {
	slugs := validate.Slugs(c.Query("autos"), maxCompareInput)
	return c.JSON(fiber.Map{"items": h.Catalog.Compare(slugs)})
}

func (h *APIHandler) FavoritesList(c *fiber.Ctx) error {
	vs := []domain.Vehicle{}
	if sid := currentSID(c); sid != "" {
		var err error
		if vs, err = h.Favorites.Get(sid); err != nil {
			applog.Error(c, "favorites.list.fail", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		}
	}
	return c.JSON(fiber.Map{"items": vs})
}

func (h *APIHandler) CreateLead(c *fiber.Ctx) error {
	var in domain.LeadInput
	if err := c.BodyParser(&in); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "body"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	lead, err := h.Leads.Submit(in)
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		applog.Security(c, "validation.fail", map[string]any{"form": "lead", "fields": fieldNames(verr)})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation", "fields": verr.Fields})
	case err != nil:
		applog.Error(c, "lead.submit.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	applog.Audit(c, "lead.submit", map[string]any{"lead": lead.ID, "vehicle": lead.VehicleSlug})
	return c.Status(fiber.StatusCreated).JSON(lead)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
