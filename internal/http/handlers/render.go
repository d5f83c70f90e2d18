package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"dealership/internal/domain"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Path"] = c.Path()
	// token the CSRF middleware put into Locals, or the cookie as a fallback
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		tok = c.Cookies("csrf_")
	}
	if tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

func renderStatus(c *fiber.Ctx, code int, tmpl string, data fiber.Map) error {
	c.Status(code)
	return render(c, tmpl, data)
}

func notFound(c *fiber.Ctx, msg string) error {
	return renderStatus(c, fiber.StatusNotFound, "notfound", fiber.Map{"Message": msg})
}

// NewEngine loads the templates in dir with the view helpers registered.
func NewEngine(dir string) *html.Engine {
	engine := html.New(dir, ".html")
	engine.AddFuncMap(TemplateFuncs())
	return engine
}

func TemplateFuncs() map[string]any {
	return map[string]any{
		"price":     formatPrice,
		"thousands": thousands,
		"km": func(n int) string {
			return thousands(n) + " km"
		},
		"join": strings.Join,
		// catalog link for an encoded query; a whole URL so the template
		// escaper keeps its & and =
		"autos": func(query string) string {
			if query == "" {
				return "/autos"
			}
			return "/autos?" + query
		},
	}
}

// formatPrice renders the listed price the way Argentine dealers print it:
// "$ 20.500.000", "US$ 42.000", or "Consultar" when unpriced.
func formatPrice(v domain.Vehicle) string {
	switch v.ListedCurrency() {
	case domain.CurrencyDollars:
		return "US$ " + thousands(v.PriceUsd)
	case domain.CurrencyPesos:
		return "$ " + thousands(v.PriceArs)
	}
	return "Consultar"
}

func thousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
