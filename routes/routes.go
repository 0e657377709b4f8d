package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/studykit/flashcard-backend/controllers"
	"github.com/studykit/flashcard-backend/middleware"
	"github.com/studykit/flashcard-backend/ws"
)

// SetupRouter registers every route. Reads are open; mutations require a
// bearer token; user administration additionally requires the admin role.
func SetupRouter(r *gin.Engine) *gin.Engine {
	r.GET("/health", controllers.HealthCheck)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/change-password", middleware.AuthMiddleware(), controllers.ChangePassword)
	}

	users := r.Group("/users")
	{
		users.Use(middleware.AuthMiddleware(), middleware.RequireRoles("admin"))
		users.GET("", controllers.GetAllUsers)
		users.GET("/:id", controllers.GetUserByID)
		users.POST("", controllers.CreateUser)
		users.PUT("/:id", controllers.UpdateUser)
		users.DELETE("/:id", controllers.DeleteUser)
	}

	sets := r.Group("/flashcardSets")
	{
		sets.GET("", controllers.GetAllFlashcardSets)
		sets.GET("/:id", controllers.GetFlashcardSetByID)
		sets.POST("", middleware.AuthMiddleware(), controllers.CreateFlashcardSet)
		sets.PUT("/:id", middleware.AuthMiddleware(), controllers.UpdateFlashcardSet)
		sets.PATCH("/:id", middleware.AuthMiddleware(), controllers.UpdateFlashcardSet)
		sets.DELETE("/:id", middleware.AuthMiddleware(), controllers.DeleteFlashcardSet)
	}

	flashcards := r.Group("/flashcards")
	{
		flashcards.GET("", controllers.GetAllFlashcards)
		flashcards.GET("/:id", controllers.GetFlashcardByID)
		flashcards.POST("", middleware.AuthMiddleware(), controllers.CreateFlashcard)
		flashcards.PUT("/:id", middleware.AuthMiddleware(), controllers.UpdateFlashcard)
		flashcards.PATCH("/:id", middleware.AuthMiddleware(), controllers.UpdateFlashcard)
		flashcards.DELETE("/:id", middleware.AuthMiddleware(), controllers.DeleteFlashcard)
		flashcards.POST("/upload", middleware.AuthMiddleware(), controllers.CreateFlashcardsFromUpload)
	}

	extract := r.Group("/extract")
	{
		extract.POST("/extract-text", controllers.ExtractText)
	}

	r.GET("/ws/status", ws.HandleStatusWebSocket)

	return r
}
