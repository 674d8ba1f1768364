package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// alertHeaders writes the X-<app>-alert / X-<app>-params pair that front-ends use
// to show a notification after a successful mutation.
func alertHeaders(c *fiber.Ctx, appName, message, param string) {
	c.Set("X-"+appName+"-alert", message)
	c.Set("X-"+appName+"-params", url.QueryEscape(param))
}

func entityCreationAlert(c *fiber.Ctx, appName, entity, id string) {
	alertHeaders(c, appName, "A new "+entity+" is created with identifier "+id, id)
}

func entityUpdateAlert(c *fiber.Ctx, appName, entity, id string) {
	alertHeaders(c, appName, "A "+entity+" is updated with identifier "+id, id)
}

func entityDeletionAlert(c *fiber.Ctx, appName, entity, id string) {
	alertHeaders(c, appName, "A "+entity+" is deleted with identifier "+id, id)
}

// failureAlert writes X-<app>-error: error.<key> and names the entity in X-<app>-params.
func failureAlert(c *fiber.Ctx, appName, entity, errorKey string) {
	c.Set("X-"+appName+"-error", "error."+errorKey)
	c.Set("X-"+appName+"-params", entity)
}
