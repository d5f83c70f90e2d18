package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "dealership/internal/log"
	"dealership/internal/services"
	"dealership/internal/validate"
)

type FavoritesHandler struct {
	Favorites *services.FavoritesService
}

func (h *FavoritesHandler) List(c *fiber.Ctx) error {
	sid := currentSID(c)
	if sid == "" {
		return render(c, "favorites", fiber.Map{"Vehicles": nil})
	}
	vs, err := h.Favorites.Get(sid)
	if err != nil {
		applog.Error(c, "favorites.list.fail", err, nil)
		return renderStatus(c, fiber.StatusInternalServerError, "notfound", fiber.Map{"Message": "No pudimos cargar tus favoritos."})
	}
	return render(c, "favorites", fiber.Map{"Vehicles": vs})
}

// Toggle saves or un-saves the vehicle in the "vehicle" form field and
// goes back to the page the visitor came from.
func (h *FavoritesHandler) Toggle(c *fiber.Ctx) error {
	sid := ensureSID(c)
	slug, ok := validate.Slug(c.FormValue("vehicle"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "vehicle"})
		return c.Status(fiber.StatusBadRequest).SendString("missing vehicle")
	}
	saved, err := h.Favorites.Toggle(sid, slug)
	if errors.Is(err, services.ErrUnknownVehicle) {
		return c.Status(fiber.StatusNotFound).SendString("unknown vehicle")
	}
	if err != nil {
		applog.Error(c, "favorites.toggle.fail", err, map[string]any{"vehicle": slug})
		return c.Status(fiber.StatusInternalServerError).SendString("No pudimos guardar el vehículo")
	}
	applog.Audit(c, "favorites.toggle", map[string]any{"vehicle": slug, "saved": saved})
	return c.Redirect(backTo(c, "/favoritos"))
}

func (h *FavoritesHandler) Remove(c *fiber.Ctx) error {
	sid := currentSID(c)
	slug, ok := validate.Slug(c.FormValue("vehicle"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "vehicle"})
		return c.Status(fiber.StatusBadRequest).SendString("missing vehicle")
	}
	if sid != "" {
		if err := h.Favorites.Remove(sid, slug); err != nil {
			applog.Error(c, "favorites.remove.fail", err, map[string]any{"vehicle": slug})
			return c.Status(fiber.StatusInternalServerError).SendString("No pudimos quitar el vehículo")
		}
		applog.Audit(c, "favorites.remove", map[string]any{"vehicle": slug})
	}
	return c.Redirect("/favoritos")
}

func (h *FavoritesHandler) Clear(c *fiber.Ctx) error {
	if sid := currentSID(c); sid != "" {
		if err := h.Favorites.Clear(sid); err != nil {
			applog.Error(c, "favorites.clear.fail", err, nil)
			return c.Status(fiber.StatusInternalServerError).SendString("No pudimos vaciar tus favoritos")
		}
		applog.Audit(c, "favorites.clear", nil)
	}
	return c.Redirect("/favoritos")
}

// backTo is the Referer when it points back into this site, otherwise def.
func backTo(c *fiber.Ctx, def string) string {
	ref := c.Get(fiber.HeaderReferer)
	if ref == "" {
		return def
	}
	if strings.HasPrefix(ref, "/") && !strings.HasPrefix(ref, "//") {
		return ref
	}
	base := c.BaseURL() + "/"
	if strings.HasPrefix(ref, base) {
		return "/" + strings.TrimPrefix(ref, base)
	}
	return def
}
