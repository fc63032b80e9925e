package handlers

import (
	"errors"
	"log"

	"github.com/amwangi254/campus_counsel/database"
	"github.com/amwangi254/campus_counsel/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterCounselorRequest struct {
	Name          string  `json:"name" validate:"required,min=2"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=6"`
	CounselorType string  `json:"counselor_type" validate:"required"`
	Bio           *string `json:"bio,omitempty"`
	Photo         *string `json:"photo,omitempty"`
}

func RegisterCounselor(c *fiber.Ctx) error {
	var req RegisterCounselorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	counselor := models.Counselor{
		Name:          req.Name,
		Email:         req.Email,
		Password:      string(hashedPassword),
		CounselorType: req.CounselorType,
		Bio:           req.Bio,
		Photo:         req.Photo,
	}

	if err := database.DB.Create(&counselor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
		}
		log.Printf("🔥 Failed to create counselor: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.Status(fiber.StatusCreated).JSON(counselor)
}

func ListCounselors(c *fiber.Ctx) error {
	query := database.DB.Order("created_at asc")
	if counselorType := c.Query("type"); counselorType != "" {
		query = query.Where("counselor_type = ?", counselorType)
	}

	counselors := []models.Counselor{}
	if err := query.Find(&counselors).Error; err != nil {
		log.Printf("🔥 Failed to list counselors: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(counselors)
}

func ListCounselorTypes(c *fiber.Ctx) error {
	types := []models.CounselorType{}
	if err := database.DB.Order("name asc").Find(&types).Error; err != nil {
		log.Printf("🔥 Failed to list counselor types: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(types)
}

type UpdateCounselorProfileRequest struct {
	Bio   *string `json:"bio"`
	Photo *string `json:"photo"`
}

func UpdateMyCounselorProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	counselorID := claims["user_id"].(string)

	var counselor models.Counselor
	if err := database.DB.First(&counselor, "id = ?", counselorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Counselor profile not found"})
	}

	var req UpdateCounselorProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Bio != nil {
		counselor.Bio = req.Bio
	}
	if req.Photo != nil {
		counselor.Photo = req.Photo
	}

	if err := database.DB.Save(&counselor).Error; err != nil {
		log.Printf("🔥 Failed to update counselor profile: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(counselor)
}
