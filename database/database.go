package database

import (
	"fmt"
	"log"

	config "github.com/amwangi254/campus_counsel/configs"
	"github.com/amwangi254/campus_counsel/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ActiveSlotIndexDDL enforces at most one Pending/Accepted appointment
// per (counselor, date, time). The booking handler does its own check
// inside a transaction; this index closes the race between two
// concurrent bookings that both pass the check.
const ActiveSlotIndexDDL = `CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
	ON appointments (counselor_id, date, time)
	WHERE status IN ('Pending', 'Accepted')`

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.Student{},
		&models.Counselor{},
		&models.CounselorType{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}

	if err := DB.Exec(ActiveSlotIndexDDL).Error; err != nil {
		log.Fatalf("🔥 Failed to create active slot index: %v", err)
	}

	fmt.Println("✅ Database migration successful")
}

func SeedCounselorTypes() {
	defaults := []string{"Academic", "Mental Health", "Career", "Financial"}

	for _, name := range defaults {
		var count int64
		if err := DB.Model(&models.CounselorType{}).Where("name = ?", name).Count(&count).Error; err != nil {
			log.Fatalf("🔥 Failed to check counselor types: %v", err)
		}
		if count > 0 {
			continue
		}
		if err := DB.Create(&models.CounselorType{Name: name}).Error; err != nil {
			log.Fatalf("🔥 Failed to seed counselor type %q: %v", name, err)
		}
	}

	log.Println("✅ Counselor types seeded")
}
