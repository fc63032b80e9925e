package handlers

import (
	"errors"
	"fmt"
	"log"

	config "github.com/amwangi254/campus_counsel/configs"
	"github.com/amwangi254/campus_counsel/database"
	"github.com/amwangi254/campus_counsel/models"
	"github.com/amwangi254/campus_counsel/notifications"
	"github.com/amwangi254/campus_counsel/services"
	"github.com/amwangi254/campus_counsel/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	errStudentNotFound   = errors.New("student not found")
	errCounselorNotFound = errors.New("counselor not found")
	errSlotTaken         = errors.New("counselor already booked at this time")
)

type BookAppointmentRequest struct {
	StudentID   string `json:"student_id" validate:"required,uuid"`
	CounselorID string `json:"counselor_id" validate:"required,uuid"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required,datetime=15:04"`
}

func BookAppointment(c *fiber.Ctx) error {
	var req BookAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	studentID, _ := uuid.Parse(req.StudentID)
	counselorID, _ := uuid.Parse(req.CounselorID)

	var appointment models.Appointment
	var student models.Student
	var counselor models.Counselor

	// Check and insert run in one transaction; the partial unique index
	// on (counselor_id, date, time) for active statuses backstops the
	// race between two concurrent bookings of the same slot.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&student, "id = ?", studentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errStudentNotFound
			}
			return err
		}
		if err := tx.First(&counselor, "id = ?", counselorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errCounselorNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Appointment{}).
			Where("counselor_id = ? AND date = ? AND time = ? AND status IN ?",
				counselorID, req.Date, req.Time, models.ActiveStatuses).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errSlotTaken
		}

		appointment = models.Appointment{
			StudentID:   studentID,
			CounselorID: counselorID,
			Date:        req.Date,
			Time:        req.Time,
			Status:      models.StatusPending,
		}
		if err := tx.Create(&appointment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errSlotTaken
			}
			return err
		}
		return nil
	})

	switch {
	case errors.Is(err, errStudentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	case errors.Is(err, errCounselorNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Counselor not found"})
	case errors.Is(err, errSlotTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Counselor already booked at this time"})
	case err != nil:
		log.Printf("🔥 Failed to book appointment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	appointment.Student = student
	appointment.Counselor = counselor

	go notifications.SendEmail(counselor.Name, counselor.Email,
		"New Appointment Request",
		fmt.Sprintf("<h1>New Appointment Request</h1><p>%s has requested an appointment on %s at %s.</p><p>Log in to accept or reject it.</p>",
			student.Name, appointment.Date, appointment.Time))

	websocket.NotifyAppointment(&websocket.AppointmentEvent{
		Type:          "appointment_created",
		AppointmentID: appointment.ID,
		StudentID:     appointment.StudentID,
		CounselorID:   appointment.CounselorID,
		Date:          appointment.Date,
		Time:          appointment.Time,
		Status:        appointment.Status,
	})

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

type StudentAppointmentResponse struct {
	AppointmentID   uuid.UUID `json:"appointment_id"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Status          string    `json:"status"`
	CounselorName   string    `json:"counselor_name"`
	CounselorType   string    `json:"counselor_type"`
	ConfirmationURL *string   `json:"confirmation_url,omitempty"`
}

func GetStudentAppointments(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if _, err := uuid.Parse(studentID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	rows := []StudentAppointmentResponse{}
	err := database.DB.Model(&models.Appointment{}).
		Select("appointments.id as appointment_id, appointments.date, appointments.time, appointments.status, appointments.confirmation_url, counselors.name as counselor_name, counselors.counselor_type").
		Joins("JOIN counselors ON counselors.id = appointments.counselor_id").
		Where("appointments.student_id = ?", studentID).
		Order("appointments.date asc, appointments.time asc, appointments.created_at asc").
		Scan(&rows).Error
	if err != nil {
		log.Printf("🔥 Failed to list appointments for student %s: %v", studentID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(rows)
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Accepted Rejected Cancelled"`
}

// Pending is the only state a booking starts in; Accepted can still be
// called off. Rejected and Cancelled are terminal.
var statusTransitions = map[string][]string{
	models.StatusPending:  {models.StatusAccepted, models.StatusRejected, models.StatusCancelled},
	models.StatusAccepted: {models.StatusCancelled},
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func UpdateAppointmentStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid appointment ID"})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var appointment models.Appointment
	if err := database.DB.Preload("Student").Preload("Counselor").First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
		}
		log.Printf("🔥 Failed to load appointment %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	// ALLOW_ANY_STATUS_TRANSITION=true restores the unconstrained
	// overwrite behavior for callers that depend on it.
	if config.Config("ALLOW_ANY_STATUS_TRANSITION") != "true" && !transitionAllowed(appointment.Status, req.Status) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("Cannot change appointment status from %s to %s", appointment.Status, req.Status),
		})
	}

	if err := database.DB.Model(&models.Appointment{}).Where("id = ?", appointment.ID).
		Update("status", req.Status).Error; err != nil {
		log.Printf("🔥 Failed to update appointment %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	appointment.Status = req.Status

	go notifications.SendEmail(appointment.Student.Name, appointment.Student.Email,
		fmt.Sprintf("Appointment %s", req.Status),
		fmt.Sprintf("<h1>Appointment %s</h1><p>Your appointment with %s on %s at %s is now %s.</p>",
			req.Status, appointment.Counselor.Name, appointment.Date, appointment.Time, req.Status))

	if req.Status == models.StatusAccepted {
		go services.GenerateConfirmationLetter(appointment)
	}

	websocket.NotifyAppointment(&websocket.AppointmentEvent{
		Type:          "appointment_status_changed",
		AppointmentID: appointment.ID,
		StudentID:     appointment.StudentID,
		CounselorID:   appointment.CounselorID,
		Date:          appointment.Date,
		Time:          appointment.Time,
		Status:        appointment.Status,
	})

	return c.JSON(appointment)
}
