package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/studykit/flashcard-backend/config"
	"github.com/studykit/flashcard-backend/models"
	"github.com/studykit/flashcard-backend/routes"
	"github.com/studykit/flashcard-backend/utils"
)

// setupRouter wires the full route table against a fresh in-memory SQLite
// database. MaxOpenConns(1) keeps the pool on the single connection that
// holds the in-memory schema.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	config.DB = db

	return routes.SetupRouter(gin.New())
}

func seedUser(t *testing.T, username, email, password string, role models.UserRole) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

func seedSet(t *testing.T, owner models.User, title string) models.FlashcardSet {
	t.Helper()
	set := models.FlashcardSet{
		UserID: owner.ID,
		Title:  title,
	}
	require.NoError(t, config.DB.Create(&set).Error)
	return set
}

func seedFlashcard(t *testing.T, set models.FlashcardSet, term, definition string) models.Flashcard {
	t.Helper()
	card := models.Flashcard{
		SetID:      set.ID,
		Term:       term,
		Definition: definition,
	}
	require.NoError(t, config.DB.Create(&card).Error)
	return card
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user.ID.String(), string(user.Role))
	require.NoError(t, err)
	return token
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
