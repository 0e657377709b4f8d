package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studykit/flashcard-backend/config"
	"github.com/studykit/flashcard-backend/models"
	"github.com/studykit/flashcard-backend/services"
	"github.com/studykit/flashcard-backend/utils"
	"github.com/studykit/flashcard-backend/ws"
)

const maxUploadBytes = 20 * 1024 * 1024

// GetAllFlashcards lists every card, or the cards of one set when a
// ?setId= filter is present.
func GetAllFlashcards(c *gin.Context) {
	setID := c.Query("setId")

	var flashcards []models.Flashcard
	query := config.DB.Model(&models.Flashcard{})
	if setID != "" {
		query = query.Where("set_id = ?", setID)
	}
	if err := query.Order("created_at ASC").Find(&flashcards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if setID != "" && len(flashcards) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No flashcards found for this set"})
		return
	}
	c.JSON(http.StatusOK, flashcards)
}

func GetFlashcardByID(c *gin.Context) {
	var flashcard models.Flashcard
	if err := config.DB.Where("id = ?", c.Param("id")).First(&flashcard).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Flashcard not found"})
		return
	}
	c.JSON(http.StatusOK, flashcard)
}

type CreateFlashcardInput struct {
	SetID      uuid.UUID `json:"setId" binding:"required"`
	Term       string    `json:"term" binding:"required"`
	Definition string    `json:"definition" binding:"required"`
}

func CreateFlashcard(c *gin.Context) {
	var input CreateFlashcardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var set models.FlashcardSet
	if err := config.DB.Where("id = ?", input.SetID).First(&set).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Flashcard set not found"})
		return
	}

	flashcard := models.Flashcard{
		SetID:      input.SetID,
		Term:       input.Term,
		Definition: input.Definition,
	}
	if err := config.DB.Create(&flashcard).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, flashcard)
}

type UpdateFlashcardInput struct {
	Term       *string `json:"term"`
	Definition *string `json:"definition"`
}

// UpdateFlashcard authorizes through the parent set: only the set's owner
// may change its cards. Fields absent from the body stay as they are.
func UpdateFlashcard(c *gin.Context) {
	var flashcard models.Flashcard
	if err := config.DB.Where("id = ?", c.Param("id")).First(&flashcard).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Flashcard not found"})
		return
	}

	var set models.FlashcardSet
	if err := config.DB.Where("id = ?", flashcard.SetID).First(&set).Error; err != nil || !utils.IsOwner(&set, c.GetString("user_id")) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied: You can only edit flashcards in your own sets"})
		return
	}

	var input UpdateFlashcardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Term != nil {
		flashcard.Term = *input.Term
	}
	if input.Definition != nil {
		flashcard.Definition = *input.Definition
	}

	if err := config.DB.Save(&flashcard).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flashcard)
}

func DeleteFlashcard(c *gin.Context) {
	var flashcard models.Flashcard
	if err := config.DB.Where("id = ?", c.Param("id")).First(&flashcard).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Flashcard not found"})
		return
	}

	var set models.FlashcardSet
	if err := config.DB.Where("id = ?", flashcard.SetID).First(&set).Error; err != nil || !utils.IsOwner(&set, c.GetString("user_id")) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied: You can only delete flashcards in your own sets"})
		return
	}

	if err := config.DB.Delete(&flashcard).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Flashcard deleted successfully"})
}

// CreateFlashcardsFromUpload is the ingestion entry point: an uploaded
// document is turned into text, the text into term/definition pairs via
// the model, and the pairs bulk-inserted under the supplied set id. Any
// stage failure aborts the whole operation; nothing is retried and no
// partial state is rolled back beyond removing the scratch directory.
func CreateFlashcardsFromUpload(c *gin.Context) {
	setIDParam := c.PostForm("setId")
	if setIDParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing setId parameter."})
		return
	}
	setID, err := uuid.Parse(setIDParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flashcard set ID format"})
		return
	}

	var set models.FlashcardSet
	if err := config.DB.Where("id = ?", setID).First(&set).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Flashcard set not found"})
		return
	}

	file, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded."})
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds 20MB"})
		return
	}

	inputType, err := utils.GetInputTypeFromExt(filepath.Ext(file.Filename))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Per-request scratch dir; removed no matter how the pipeline ends.
	scratchDir, err := os.MkdirTemp("", "flashcard-upload-*")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer os.RemoveAll(scratchDir)

	uploadPath := filepath.Join(scratchDir, cleanBaseName(file.Filename))
	if err := c.SaveUploadedFile(file, uploadPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	text, err := services.NormalizeInput(inputType, uploadPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	generated, err := services.GenerateFlashcards(c.Request.Context(), text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	flashcards := make([]models.Flashcard, 0, len(generated))
	for _, g := range generated {
		if g.Term == "" || g.Definition == "" {
			continue
		}
		flashcards = append(flashcards, models.Flashcard{
			SetID:      setID,
			Term:       g.Term,
			Definition: g.Definition,
		})
	}
	if len(flashcards) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Model produced no usable flashcards"})
		return
	}

	if err := config.DB.Create(&flashcards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ws.BroadcastFlashcardsGenerated(setID.String(), len(flashcards))
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Flashcards created",
		"flashcards": flashcards,
	})
}

// cleanBaseName guards against path-ish upload filenames.
func cleanBaseName(name string) string {
	return strings.ReplaceAll(filepath.Base(name), "..", "")
}
