package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/studykit/flashcard-backend/config"
	"github.com/studykit/flashcard-backend/models"
	"github.com/studykit/flashcard-backend/utils"
	"github.com/studykit/flashcard-backend/ws"
)

func GetAllFlashcardSets(c *gin.Context) {
	var sets []models.FlashcardSet
	if err := config.DB.Find(&sets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sets)
}

// GetFlashcardSetByID rejects syntactically invalid ids before touching
// the store.
func GetFlashcardSetByID(c *gin.Context) {
	setID := strings.TrimSpace(c.Param("id"))
	if _, err := uuid.Parse(setID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid flashcard set ID format"})
		return
	}

	var set models.FlashcardSet
	if err := config.DB.Where("id = ?", setID).First(&set).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Flashcard set not found"})
		return
	}
	c.JSON(http.StatusOK, set)
}

type CreateFlashcardSetInput struct {
	Username    string `json:"username" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// CreateFlashcardSet resolves the submitted username to the owning user id
// server-side.
func CreateFlashcardSet(c *gin.Context) {
	var input CreateFlashcardSetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User \"" + input.Username + "\" not found"})
		return
	}

	set := models.FlashcardSet{
		UserID:      user.ID,
		Title:       input.Title,
		Description: input.Description,
	}
	if err := config.DB.Create(&set).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ws.BroadcastSetListChanged()
	c.JSON(http.StatusCreated, set)
}

type UpdateFlashcardSetInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func UpdateFlashcardSet(c *gin.Context) {
	setID := strings.TrimSpace(c.Param("id"))
	if _, err := uuid.Parse(setID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid flashcard set ID format"})
		return
	}

	var set models.FlashcardSet
	if err := config.DB.Where("id = ?", setID).First(&set).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Flashcard set not found"})
		return
	}

	if !utils.IsOwner(&set, c.GetString("user_id")) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied: You can only update your own flashcard sets"})
		return
	}

	var input UpdateFlashcardSetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Title != nil {
		set.Title = *input.Title
		set.Slug = slug.Make(*input.Title)
	}
	if input.Description != nil {
		set.Description = *input.Description
	}

	if err := config.DB.Save(&set).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, set)
}

// DeleteFlashcardSet removes the set record only. Cards keep their SetID;
// there is no cascade.
func DeleteFlashcardSet(c *gin.Context) {
	setID := strings.TrimSpace(c.Param("id"))
	if _, err := uuid.Parse(setID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid flashcard set ID format"})
		return
	}

	var set models.FlashcardSet
	if err := config.DB.Where("id = ?", setID).First(&set).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Flashcard set not found"})
		return
	}

	if !utils.IsOwner(&set, c.GetString("user_id")) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied: You can only delete your own flashcard sets"})
		return
	}

	if err := config.DB.Delete(&set).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ws.BroadcastSetListChanged()
	c.JSON(http.StatusOK, gin.H{"message": "Flashcard set deleted successfully"})
}
