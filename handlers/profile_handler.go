package handlers

import (
	"github.com/amwangi254/campus_counsel/database"
	"github.com/amwangi254/campus_counsel/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func GetProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)
	role := claims["role"].(string)

	if role == "counselor" {
		var counselor models.Counselor
		if err := database.DB.Where("id = ?", userID).First(&counselor).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Counselor not found"})
		}
		return c.JSON(counselor)
	}

	var student models.Student
	if err := database.DB.Where("id = ?", userID).First(&student).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	return c.JSON(student)
}
