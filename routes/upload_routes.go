package routes

import (
	"github.com/amwangi254/campus_counsel/handlers"
	"github.com/amwangi254/campus_counsel/middleware"
	"github.com/gofiber/fiber/v2"
)

func UploadRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	uploads := api.Group("/uploads", middleware.Protected())
	uploads.Get("/signature", handlers.GenerateUploadSignature)
}
