package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mentorlink-dev/mentorlink/internal/handlers"
	"github.com/mentorlink-dev/mentorlink/internal/middleware"
	"github.com/mentorlink-dev/mentorlink/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.RegisterUser)
			auth.POST("/login", handlers.LoginUser)
			auth.POST("/logout", handlers.LogoutUser)
			auth.GET("/confirm", handlers.ConfirmEmail)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		users := api.Group("/users", middleware.AuthMiddleware())
		{
			users.PATCH("/me", handlers.UpdateProfile)
			users.PUT("/me/password", handlers.ChangePassword)
			users.DELETE("/me", handlers.DeleteAccount)

			// Admin-only listings; the handlers enforce the role check.
			users.GET("/admins", handlers.ListAdmins)
			users.GET("/representatives", handlers.ListRepresentatives)

			users.GET("/:user_id", handlers.GetUser)
		}
	}

	return r
}
