package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amwangi254/campus_counsel/database"
	"github.com/amwangi254/campus_counsel/models"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Student{},
		&models.Counselor{},
		&models.CounselorType{},
		&models.Appointment{},
	); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	if err := db.Exec(database.ActiveSlotIndexDDL).Error; err != nil {
		t.Fatalf("failed to create active slot index: %v", err)
	}

	database.DB = db
}

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "unit-test-secret-0123456789")

	app := fiber.New()
	app.Post("/api/v1/auth/login", Login)
	app.Post("/api/v1/students", RegisterStudent)
	app.Get("/api/v1/students", ListStudents)
	app.Post("/api/v1/counselors", RegisterCounselor)
	app.Get("/api/v1/counselors", ListCounselors)
	app.Get("/api/v1/counselor-types", ListCounselorTypes)
	app.Post("/api/v1/appointments", BookAppointment)
	app.Get("/api/v1/appointments/student/:studentId", GetStudentAppointments)
	app.Patch("/api/v1/appointments/:id", UpdateAppointmentStatus)
	return app
}

func performRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var req *http.Request
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonData))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	resp.Body.Close()
}

func createTestStudent(t *testing.T, name, email string) models.Student {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	student := models.Student{Name: name, Email: email, Password: string(hashed)}
	if err := database.DB.Create(&student).Error; err != nil {
		t.Fatalf("failed to create test student: %v", err)
	}
	return student
}

func createTestCounselor(t *testing.T, name, email, counselorType string) models.Counselor {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	counselor := models.Counselor{
		Name:          name,
		Email:         email,
		Password:      string(hashed),
		CounselorType: counselorType,
	}
	if err := database.DB.Create(&counselor).Error; err != nil {
		t.Fatalf("failed to create test counselor: %v", err)
	}
	return counselor
}
