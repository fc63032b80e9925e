package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CounselorType struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"size:100;not null;unique" json:"name"`
}

func (t *CounselorType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
