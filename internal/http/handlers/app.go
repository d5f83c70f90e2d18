package handlers

import (
	"errors"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"dealership/internal/config"
	applog "dealership/internal/log"
)

// ErrorHandler logs the failure and shows a friendly page without any
// internal detail.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < 500 {
		code = fe.Code
	}
	if code >= 500 {
		applog.Error(c, "server.error", err, nil)
	}
	msg := "Algo salió mal. Probá de nuevo en unos minutos."
	if code == fiber.StatusNotFound {
		msg = "Página no encontrada."
	}
	if strings.HasPrefix(c.Path(), "/api/") {
		if code == fiber.StatusNotFound {
			return c.Status(code).JSON(fiber.Map{"error": "not found"})
		}
		return c.Status(code).JSON(fiber.Map{"error": "internal error"})
	}
	if rerr := renderStatus(c, code, "notfound", fiber.Map{"Message": msg}); rerr != nil {
		return c.Status(code).SendString(msg)
	}
	return nil
}

// NewApp builds the fiber app: middleware, static files, HTML pages and
// the JSON API.
func NewApp(cfg config.Config, d *Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:        NewEngine(cfg.TemplatesDir),
		ErrorHandler: ErrorHandler,
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{Output: log.Writer()}))
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        perMinute(cfg.RateLimitPerMin, 60),
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := c.Path()
			return strings.HasPrefix(p, "/static/") || p == "/healthz"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.global.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).SendString("Demasiadas solicitudes, probá en un minuto.")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		// JSON clients carry no form token
		Next: func(c *fiber.Ctx) bool { return strings.HasPrefix(c.Path(), "/api/") },
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"err": err.Error()})
			return renderStatus(c, fiber.StatusForbidden, "notfound", fiber.Map{"Message": "No pudimos validar el formulario. Recargá la página e intentá de nuevo."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok, ok := c.Locals("csrf").(string); ok {
			c.Locals("CSRFToken", tok)
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", filepath.Join(filepath.Dir(cfg.TemplatesDir), "static"))

	// ---------- Pages ----------
	searchLimiter := limiter.New(limiter.Config{
		Max:        perMinute(cfg.SearchLimitPerMin, 30),
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|search"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.search.hit", nil)
			if strings.HasPrefix(c.Path(), "/api/") {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
			}
			return c.Status(fiber.StatusTooManyRequests).SendString("Demasiadas búsquedas, probá en un minuto.")
		},
	})

	app.Get("/", d.Home.Home)
	app.Get("/autos", searchLimiter, d.Catalog.List)
	app.Get("/autos/:slug", d.Catalog.Detail)
	app.Get("/comparar", d.Catalog.Compare)

	app.Get("/favoritos", d.Favorites.List)
	app.Post("/favoritos", d.Favorites.Toggle)
	app.Post("/favoritos/eliminar", d.Favorites.Remove)
	app.Post("/favoritos/vaciar", d.Favorites.Clear)

	app.Get("/contacto", d.Leads.Form)
	app.Post("/contacto", d.Leads.Submit)

	// ---------- API ----------
	api := app.Group("/api/v1")
	api.Get("/vehicles", searchLimiter, d.API.Vehicles)
	api.Get("/vehicles/:slug", d.API.Vehicle)
	api.Get("/filters", d.API.Filters)
	api.Get("/filters/models", d.API.Models)
	api.Get("/filters/versions", d.API.Versions)
	api.Get("/compare", d.API.Compare)
	api.Get("/favorites", d.API.FavoritesList)
	api.Post("/leads", d.API.CreateLead)
	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return notFound(c, "Página no encontrada.")
	})
	return app
}

func perMinute(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}
