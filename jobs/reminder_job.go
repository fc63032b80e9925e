package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/amwangi254/campus_counsel/database"
	"github.com/amwangi254/campus_counsel/models"
	"github.com/amwangi254/campus_counsel/notifications"
)

// SendAppointmentReminders emails both parties of an accepted
// appointment starting in the next hour. Runs every 5 minutes, so the
// 60-65 minute window means each appointment is reminded exactly once.
func SendAppointmentReminders() {
	log.Println("Running job: SendAppointmentReminders...")

	now := time.Now()
	dates := []string{
		now.Format("2006-01-02"),
		now.AddDate(0, 0, 1).Format("2006-01-02"),
	}

	var accepted []models.Appointment
	err := database.DB.
		Preload("Student").
		Preload("Counselor").
		Where("status = ? AND date IN ?", models.StatusAccepted, dates).
		Find(&accepted).Error
	if err != nil {
		log.Printf("Error checking for upcoming appointments: %v", err)
		return
	}

	for _, appointment := range accepted {
		startsAt, err := time.ParseInLocation("2006-01-02 15:04", appointment.Date+" "+appointment.Time, time.Local)
		if err != nil {
			log.Printf("Skipping appointment %s with malformed date/time: %v", appointment.ID, err)
			continue
		}

		until := startsAt.Sub(now)
		if until < 60*time.Minute || until >= 65*time.Minute {
			continue
		}

		log.Printf("Sending reminder for appointment ID: %s", appointment.ID)

		emailSubject := "Reminder: Your Appointment Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Appointment Reminder</h1><p>Hi there,</p><p>This is a friendly reminder that your counseling appointment is scheduled for %s at %s.</p>",
			appointment.Date, appointment.Time,
		)

		go notifications.SendEmail(appointment.Student.Name, appointment.Student.Email, emailSubject, emailBody)
		go notifications.SendEmail(appointment.Counselor.Name, appointment.Counselor.Email, emailSubject, emailBody)
	}
}
