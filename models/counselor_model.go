package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Counselor struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	// Open set of category labels, e.g. "Academic", "Mental Health".
	CounselorType string  `gorm:"size:100;not null" json:"counselor_type"`
	Bio           *string `gorm:"type:text" json:"bio"`
	Photo         *string `gorm:"size:512" json:"photo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Counselor) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
