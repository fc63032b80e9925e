package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "Pending"
	StatusAccepted  = "Accepted"
	StatusRejected  = "Rejected"
	StatusCancelled = "Cancelled"
)

// ActiveStatuses are the statuses that block a counselor's slot.
// Rejected and Cancelled appointments free the slot for rebooking.
var ActiveStatuses = []string{StatusPending, StatusAccepted}

type Appointment struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	CounselorID uuid.UUID `gorm:"type:uuid;not null;index" json:"counselor_id"`

	// Calendar date and wall-clock time, normalized ("2006-01-02" / "15:04").
	// Stored as text so the conflict check stays a plain equality match.
	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Status          string  `gorm:"size:20;not null;default:'Pending'" json:"status"`
	ConfirmationURL *string `gorm:"size:512" json:"confirmation_url,omitempty"`

	Student   Student   `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Counselor Counselor `gorm:"foreignkey:CounselorID" json:"counselor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
