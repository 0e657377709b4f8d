package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/studykit/flashcard-backend/services"
	"github.com/studykit/flashcard-backend/utils"
)

// ExtractText uploads a document and returns its recognized text without
// generating any flashcards. Kept alongside the upload pipeline as an
// alternative client flow.
func ExtractText(c *gin.Context) {
	file, err := c.FormFile("pdfFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No PDF file uploaded."})
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

	scratchDir, err := os.MkdirTemp("", "extract-*")
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

	c.JSON(http.StatusOK, gin.H{"text": text})
}
