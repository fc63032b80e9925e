package routes

import (
	"github.com/amwangi254/campus_counsel/handlers"
	"github.com/gofiber/fiber/v2"
)

func StudentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	students := api.Group("/students")
	students.Post("", handlers.RegisterStudent)
	students.Get("", handlers.ListStudents)
}
