package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/studykit/flashcard-backend/models"
)

func TestIsOwner(t *testing.T) {
	ownerID := uuid.New()
	set := &models.FlashcardSet{UserID: ownerID}

	assert.True(t, IsOwner(set, ownerID.String()))
	assert.False(t, IsOwner(set, uuid.NewString()))
	assert.False(t, IsOwner(set, "not-a-uuid"))
	assert.False(t, IsOwner(set, ""))
}

func TestGetInputTypeFromExt(t *testing.T) {
	for ext, want := range map[string]string{
		".pdf":  "pdf",
		".docx": "docx",
		".txt":  "txt",
	} {
		got, err := GetInputTypeFromExt(ext)
		assert.NoError(t, err)
		assert.Equal(t, want, string(got))
	}

	_, err := GetInputTypeFromExt(".exe")
	assert.Error(t, err)
}
