package jobs

import (
	"fmt"
	"testing"
	"time"

	"github.com/amwangi254/campus_counsel/database"
	"github.com/amwangi254/campus_counsel/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
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

	database.DB = db
}

func createAppointment(t *testing.T, student models.Student, counselor models.Counselor, date, timeOfDay, status string) models.Appointment {
	t.Helper()

	appointment := models.Appointment{
		StudentID:   student.ID,
		CounselorID: counselor.ID,
		Date:        date,
		Time:        timeOfDay,
		Status:      status,
	}
	if err := database.DB.Create(&appointment).Error; err != nil {
		t.Fatalf("failed to create appointment: %v", err)
	}
	return appointment
}

func TestExpireStalePendingAppointments(t *testing.T) {
	setupTestDB(t)

	student := models.Student{Name: "Amina Yusuf", Email: "amina@example.com", Password: "x"}
	if err := database.DB.Create(&student).Error; err != nil {
		t.Fatalf("failed to create student: %v", err)
	}
	counselor := models.Counselor{Name: "Dr. Otieno", Email: "otieno@example.com", Password: "x", CounselorType: "Academic"}
	if err := database.DB.Create(&counselor).Error; err != nil {
		t.Fatalf("failed to create counselor: %v", err)
	}

	staleDate := time.Now().AddDate(0, 0, -3).Format("2006-01-02")
	today := time.Now().Format("2006-01-02")

	stalePending := createAppointment(t, student, counselor, staleDate, "10:00", models.StatusPending)
	staleAccepted := createAppointment(t, student, counselor, staleDate, "11:00", models.StatusAccepted)
	freshPending := createAppointment(t, student, counselor, today, "10:00", models.StatusPending)

	ExpireStalePendingAppointments()

	var gotStalePending models.Appointment
	assert.NoError(t, database.DB.First(&gotStalePending, "id = ?", stalePending.ID).Error)
	assert.Equal(t, models.StatusRejected, gotStalePending.Status)

	// Accepted appointments are never expired, regardless of age.
	var gotStaleAccepted models.Appointment
	assert.NoError(t, database.DB.First(&gotStaleAccepted, "id = ?", staleAccepted.ID).Error)
	assert.Equal(t, models.StatusAccepted, gotStaleAccepted.Status)

	// Pending appointments for today stay pending.
	var gotFreshPending models.Appointment
	assert.NoError(t, database.DB.First(&gotFreshPending, "id = ?", freshPending.ID).Error)
	assert.Equal(t, models.StatusPending, gotFreshPending.Status)
}
