package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Story struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string    `gorm:"not null"`
	Link  string
	Done  bool `gorm:"not null;default:false"`

	Cards []Card `gorm:"foreignKey:StoryID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a fresh identifier when none was set by the caller.
func (s *Story) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
