package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"dealership/internal/domain"
	applog "dealership/internal/log"
	"dealership/internal/services"
	"dealership/internal/validate"
)

type LeadHandler struct {
	Leads   *services.LeadService
	Catalog *services.CatalogService
}

// Form is the contact page. ?auto=<slug> pre-fills the enquiry for that
// vehicle.
func (h *LeadHandler) Form(c *fiber.Ctx) error {
	in := domain.LeadInput{}
	data := fiber.Map{}
	if slug, ok := validate.Slug(c.Query("auto")); ok {
		if v, found := h.Catalog.Vehicle(slug); found {
			in.VehicleSlug = v.Slug
			in.Message = "Hola, me interesa el " + v.Title() + "."
			data["Vehicle"] = v
		}
	}
	data["In"] = in
	return render(c, "contact", data)
}

func (h *LeadHandler) Submit(c *fiber.Ctx) error {
	var in domain.LeadInput
	if err := c.BodyParser(&in); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "body"})
		return renderStatus(c, fiber.StatusBadRequest, "contact", fiber.Map{"In": in, "Err": "Revisá los datos del formulario."})
	}
	data := fiber.Map{"In": in}
	if v, ok := h.Catalog.Vehicle(in.VehicleSlug); ok {
		data["Vehicle"] = v
	}

	lead, err := h.Leads.Submit(in)
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		applog.Security(c, "validation.fail", map[string]any{"form": "lead", "fields": fieldNames(verr)})
		data["Errors"] = verr.Fields
		return renderStatus(c, fiber.StatusBadRequest, "contact", data)
	case err != nil:
		applog.Error(c, "lead.submit.fail", err, nil)
		return renderStatus(c, fiber.StatusInternalServerError, "notfound", fiber.Map{"Message": "No pudimos enviar tu consulta. Probá de nuevo en unos minutos."})
	}
	applog.Audit(c, "lead.submit", map[string]any{"lead": lead.ID, "vehicle": lead.VehicleSlug})
	data["Sent"] = true
	data["In"] = domain.LeadInput{}
	return render(c, "contact", data)
}

func fieldNames(verr *services.ValidationError) []string {
	names := make([]string, 0, len(verr.Fields))
	for _, f := range []string{"name", "email", "phone", "message", "vehicle"} {
		if _, ok := verr.Fields[f]; ok {
			names = append(names, f)
		}
	}
	return names
}
