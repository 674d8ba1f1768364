package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes attaches the health probes and the /credit-cards API to app.
// PUT and PATCH on the collection path answer 405 through Fiber's method check.
func RegisterRoutes(app *fiber.App, db *sql.DB, cards *CreditCardHandler) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group(creditCardsPath)
	api.Post("", cards.Create)
	api.Get("", cards.List)
	api.Get("/:id", cards.Get)
	api.Put("/:id", cards.Update)
	api.Patch("/:id", cards.PartialUpdate)
	api.Delete("/:id", cards.Delete)
}

// HealthCheck godoc
// @Summary Readiness probe
// @Description Pings the database with a 2s budget.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe answers 200 while the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
