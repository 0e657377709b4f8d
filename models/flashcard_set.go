package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

// FlashcardSet is a named, owned collection of flashcards. The owner is
// fixed at creation; cards reference the set by SetID rather than being
// embedded.
type FlashcardSet struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	PublicID    string    `gorm:"size:30;uniqueIndex" json:"public_id"`
	Slug        string    `gorm:"size:220;index" json:"slug"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *FlashcardSet) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.PublicID == "" {
		publicID, err := gonanoid.New()
		if err != nil {
			return err
		}
		s.PublicID = publicID
	}
	if s.Slug == "" {
		s.Slug = slug.Make(s.Title)
	}
	return nil
}
