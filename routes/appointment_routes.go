package routes

import (
	"github.com/amwangi254/campus_counsel/handlers"
	"github.com/gofiber/fiber/v2"
)

func AppointmentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	appointments := api.Group("/appointments")
	appointments.Post("", handlers.BookAppointment)
	appointments.Get("/student/:studentId", handlers.GetStudentAppointments)
	appointments.Patch("/:id", handlers.UpdateAppointmentStatus)
}
