package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const sessionCookie = "sid"

// ensureSID returns the anonymous session id, issuing a new one when the
// visitor has none yet.
func ensureSID(c *fiber.Ctx) string {
	if sid := currentSID(c); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 180,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
	})
	return sid
}

// currentSID returns the session id only if it is a well formed uuid, so a
// forged cookie never reaches the database.
func currentSID(c *fiber.Ctx) string {
	sid := c.Cookies(sessionCookie)
	if _, err := uuid.Parse(sid); err != nil {
		return ""
	}
	return sid
}
