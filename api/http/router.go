package http

import (
	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	"github.com/Gogul-D/Ai-bot/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, chat *handlers.ChatHandler) {
	app.Get("/", health.Root)
	app.Post("/chat", chat.Chat)

	// OpenAPI description of the routes above
	app.Get("/swagger/*", swagger.HandlerDefault)
}
