package routes

import (
	"github.com/amwangi254/campus_counsel/handlers"
	"github.com/amwangi254/campus_counsel/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile", middleware.Protected())
	profile.Get("", handlers.GetProfile)
}
