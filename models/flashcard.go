package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Flashcard is a single term/definition pair belonging to a FlashcardSet.
// There is intentionally no DB-level cascade from the set: deleting a set
// leaves its cards in place.
type Flashcard struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SetID      uuid.UUID `gorm:"type:uuid;not null;index" json:"set_id"`
	Term       string    `gorm:"type:text;not null" json:"term"`
	Definition string    `gorm:"type:text;not null" json:"definition"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (f *Flashcard) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
