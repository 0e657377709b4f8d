package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Document in, cards out: everything except the hosted model call.
func TestDocumentToFlashcards(t *testing.T) {
	stubModel(t, func(ctx context.Context, prompt string) (string, error) {
		assert.Contains(t, prompt, "Paris is the capital of France.")
		return "```json\n" + `{
		  "flashcardSet": {
		    "title": "Extracted Flashcards",
		    "description": "Generated from provided text",
		    "flashcards": [
		      {"term": "What is the capital of France?", "definition": "Paris."}
		    ]
		  }
		}` + "\n```", nil
	})

	path := filepath.Join(t.TempDir(), "geography.txt")
	require.NoError(t, os.WriteFile(path, []byte("Paris is the capital of France."), 0o644))

	text, err := NormalizeInput(InputTXT, path)
	require.NoError(t, err)

	cards, err := GenerateFlashcards(context.Background(), text)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.NotEmpty(t, cards[0].Term)
	assert.NotEmpty(t, cards[0].Definition)
}
