package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// GeneratedFlashcard is one term/definition pair parsed out of the model
// reply.
type GeneratedFlashcard struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type flashcardReply struct {
	FlashcardSet struct {
		Title       string               `json:"title"`
		Description string               `json:"description"`
		Flashcards  []GeneratedFlashcard `json:"flashcards"`
	} `json:"flashcardSet"`
}

// GenerateText is the model call used by the pipeline. A variable so
// tests can stub the external API.
var GenerateText = GeminiGenerateText

// BuildFlashcardPrompt embeds the extracted document text into the fixed
// instruction template the model is asked to answer with valid JSON.
func BuildFlashcardPrompt(text string) string {
	now := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf(`You are an assistant that creates short flashcards. From the text below, catch the most important concepts and:

1. Write a "Question" about the main concept.
2. Write a short "Explanation" (definition) which might include an example.

Return the result as *valid JSON* containing:

{
  "flashcardSet": {
    "title": "Extracted Flashcards",
    "description": "Generated from provided text",
    "createdAt": "%s",
    "updatedAt": "%s",
    "flashcards": [
      {
        "term": "string",
        "definition": "string",
        "createdAt": "%s"
      }
    ]
  }
}

Text to transform:
%s`, now, now, now, text)
}

// ParseFlashcardReply parses the model's reply text. Replies often arrive
// wrapped in a markdown code fence, which is stripped first. A reply that
// is not the expected JSON shape fails the whole operation; there is no
// repair pass.
func ParseFlashcardReply(raw string) ([]GeneratedFlashcard, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	var reply flashcardReply
	if err := json.Unmarshal([]byte(clean), &reply); err != nil {
		return nil, errors.New("invalid JSON format received from model")
	}
	if len(reply.FlashcardSet.Flashcards) == 0 {
		return nil, errors.New("model reply contained no flashcards")
	}
	return reply.FlashcardSet.Flashcards, nil
}

// GenerateFlashcards runs the text-to-flashcards stages: clean, prompt,
// model call, parse. Each stage either produces input for the next or
// fails the operation; nothing is retried.
func GenerateFlashcards(ctx context.Context, text string) ([]GeneratedFlashcard, error) {
	cleaned := PreCleanText(text)
	if cleaned == "" {
		return nil, errors.New("no text content to generate flashcards from")
	}

	raw, err := GenerateText(ctx, BuildFlashcardPrompt(cleaned))
	if err != nil {
		return nil, err
	}

	return ParseFlashcardReply(raw)
}
