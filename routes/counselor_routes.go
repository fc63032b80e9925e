package routes

import (
	"github.com/amwangi254/campus_counsel/handlers"
	"github.com/amwangi254/campus_counsel/middleware"
	"github.com/gofiber/fiber/v2"
)

func CounselorRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/counselor-types", handlers.ListCounselorTypes)

	counselors := api.Group("/counselors")
	counselors.Post("", handlers.RegisterCounselor)
	counselors.Get("", handlers.ListCounselors)
	counselors.Patch("/me", middleware.Protected(), middleware.CounselorRequired(), handlers.UpdateMyCounselorProfile)
}
