package utils

import (
	"github.com/google/uuid"

	"github.com/studykit/flashcard-backend/models"
)

// IsOwner reports whether the acting user (as attached to the request
// context by the auth middleware) owns the given flashcard set. Every
// mutation path for sets and cards goes through this single predicate.
func IsOwner(set *models.FlashcardSet, actorID string) bool {
	uid, err := uuid.Parse(actorID)
	if err != nil {
		return false
	}
	return set.UserID == uid
}
