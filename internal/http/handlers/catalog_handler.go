package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"dealership/internal/catalog"
	applog "dealership/internal/log"
	"dealership/internal/services"
	"dealership/internal/validate"
)

const relatedCount = 4

type CatalogHandler struct {
	Catalog   *services.CatalogService
	Favorites *services.FavoritesService
}

// queryParams normalizes the raw query string. A malformed escape keeps
// whatever parsed before it; the normalizer handles the rest.
func queryParams(c *fiber.Ctx) catalog.Params {
	raw, _ := url.ParseQuery(string(c.Request().URI().QueryString()))
	return catalog.Normalize(raw)
}

// search runs the query and logs it; shared by the HTML and JSON listings.
func search(c *fiber.Ctx, svc *services.CatalogService) catalog.Result {
	p := queryParams(c)
	res := svc.Search(p)
	fields := map[string]any{"total": res.Total, "page": res.Page, "query": res.Applied.Query(false)}
	if res.Page != p.Page {
		fields["requested_page"] = p.Page
	}
	applog.Info(c, "catalog.search", fields)
	return res
}

// List is the catalog page: filters, active chips, results and paging.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	res := search(c, h.Catalog)
	p := res.Applied
	meta := h.Catalog.Metadata()

	data := fiber.Map{
		"Result":     res,
		"P":          p,
		"Meta":       meta,
		"Models":     meta.ModelsFor(p.Brand),
		"Versions":   meta.VersionsFor(p.Brand, p.Model),
		"Chips":      catalog.Chips(p),
		"ShareQuery": p.Query(true),
		"Sorts":      sortOptions,
		"PerPage":    catalog.PerPageOptions,
		"Types":      typeOptions,
		"Conditions": conditionOptions,
		"Bodies":     bodyOptions,
	}
	data["PrevQuery"] = catalog.PageQuery(p, res.PrevPage())
	data["NextQuery"] = catalog.PageQuery(p, res.NextPage())
	return render(c, "catalog", data)
}

func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.Params("slug"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "slug"})
		return notFound(c, "Este vehículo ya no está disponible.")
	}
	v, found := h.Catalog.Vehicle(slug)
	if !found {
		return notFound(c, "Este vehículo ya no está disponible.")
	}
	saved := false
	if sid := currentSID(c); sid != "" {
		var err error
		if saved, err = h.Favorites.Has(sid, slug); err != nil {
			applog.Error(c, "favorites.lookup.fail", err, map[string]any{"vehicle": slug})
		}
	}
	return render(c, "vehicle", fiber.Map{
		"V":          v,
		"Related":    h.Catalog.Related(v, relatedCount),
		"ViewingNow": services.ViewingNow(v.Slug),
		"Saved":      saved,
	})
}

// Compare shows up to three vehicles side by side, from ?autos=a,b,c.
func (h *CatalogHandler) Compare(c *fiber.Ctx) error {
	slugs := validate.Slugs(c.Query("autos"), maxCompareInput)
	return render(c, "compare", fiber.Map{
		"Vehicles": h.Catalog.Compare(slugs),
		"Max":      services.MaxCompare,
	})
}

// the compare list is resolved against the store after this cut
const maxCompareInput = 10

type option struct {
	Value string
	Label string
}

var sortOptions = []option{
	{string(catalog.SortRecommended), "Recomendados"},
	{string(catalog.SortPriceAsc), "Menor precio"},
	{string(catalog.SortPriceDesc), "Mayor precio"},
	{string(catalog.SortYearDesc), "Más nuevos"},
	{string(catalog.SortYearAsc), "Más antiguos"},
	{string(catalog.SortKmAsc), "Menos kilómetros"},
	{string(catalog.SortKmDesc), "Más kilómetros"},
}

var typeOptions = []option{
	{"usados", "Usados"},
	{"nuevos", "0km"},
	{"motos", "Motos"},
}

var conditionOptions = []option{
	{"0km", "0km"},
	{"usados", "Usado"},
	{"reventa", "Reventa"},
	{"proximo_ingreso", "Próximo ingreso"},
}

var bodyOptions = []option{
	{"sedan", "Sedán"},
	{"hatchback", "Hatchback"},
	{"coupe", "Coupé"},
	{"convertible", "Convertible"},
	{"suv", "SUV"},
	{"pickup", "Pick-up"},
	{"wagon", "Rural"},
	{"van", "Utilitario"},
	{"moto", "Moto"},
}
