package jobs

import (
	"log"
	"time"

	"github.com/amwangi254/campus_counsel/database"
	"github.com/amwangi254/campus_counsel/models"
)

// ExpireStalePendingAppointments rejects Pending appointments whose date
// passed more than a day ago without the counselor ever responding.
// Rejection frees the slot, so the comparison stays on the date column
// only; ISO dates order correctly as text.
func ExpireStalePendingAppointments() {
	log.Println("Running job: ExpireStalePendingAppointments...")

	cutoff := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	result := database.DB.Model(&models.Appointment{}).
		Where("status = ? AND date < ?", models.StatusPending, cutoff).
		Update("status", models.StatusRejected)
	if result.Error != nil {
		log.Printf("Error expiring stale pending appointments: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Marked %d stale pending appointment(s) as rejected.", result.RowsAffected)
	}
}
