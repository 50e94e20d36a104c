package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status enumerates the four board columns a card can sit in. It is a
// closed set; anything else is rejected before it reaches the database.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusVerify     Status = "VERIFY"
	StatusDone       Status = "DONE"
)

// Statuses lists the valid card statuses in board order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusVerify, StatusDone}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusVerify, StatusDone:
		return true
	}
	return false
}

type Card struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Text     string    `gorm:"not null"`
	StoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserName *string   `gorm:"size:50"`
	Status   Status    `gorm:"size:11;not null;default:'TODO'"`
	Done     bool      `gorm:"not null;default:false"`

	Story Story `gorm:"foreignKey:StoryID"`
	User  *User `gorm:"foreignKey:UserName;references:Name;constraint:OnDelete:SET NULL"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
