package api

import (
	"net/http"

	"fittrack/gym-app/internal/domain"
	"fittrack/gym-app/internal/mailer"
	"fittrack/gym-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every HTTP endpoint onto the router.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	adviceService service.AdviceService,
	sessionService service.SessionService,
	progressService service.ProgressService,
	profileService service.ProfileService,
	mail mailer.Mailer,
) {
	authHandler := NewAuthHandler(authService)
	adviceHandler := NewAdviceHandler(adviceService)
	sessionHandler := NewSessionHandler(sessionService)
	progressHandler := NewProgressHandler(progressService)
	profileHandler := NewProfileHandler(profileService)
	contactHandler := NewContactHandler(mail)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Public endpoints: the chatbot and the contact form.
		apiV1.POST("/chatbot", adviceHandler.Chat)
		apiV1.POST("/contact", contactHandler.Submit)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Advice Generators ---
		adviceGroup := protected.Group("/advice")
		{
			adviceGroup.POST("/injury", adviceHandler.InjuryAdvice)
			adviceGroup.POST("/workout", adviceHandler.WorkoutPlan)
			adviceGroup.POST("/diet", adviceHandler.DietPlan)
		}

		// --- Member Profile ---
		meGroup := protected.Group("/me")
		{
			meGroup.GET("", profileHandler.GetProfile)
			meGroup.PUT("/notifications", profileHandler.SetNotifyOptIn)
			meGroup.POST("/avatar", profileHandler.RequestAvatarUpload)
			meGroup.PUT("/avatar", profileHandler.ConfirmAvatarUpload)
			meGroup.GET("/avatar", profileHandler.GetAvatarURL)
		}

		// --- Progress Logs ---
		progressGroup := protected.Group("/progress")
		{
			progressGroup.POST("", progressHandler.AddEntry)
			progressGroup.GET("", progressHandler.ListEntries)
			progressGroup.DELETE("/:id", progressHandler.DeleteEntry)
		}

		// --- Admin: Session Management ---
		adminGroup := protected.Group("/admin")
		adminGroup.Use(RoleMiddleware(domain.RoleAdmin))
		{
			adminGroup.POST("/sessions", sessionHandler.CreateSession)
			adminGroup.GET("/sessions", sessionHandler.ListSessions)
			adminGroup.GET("/sessions/:id", sessionHandler.GetSession)
			adminGroup.PUT("/sessions/:id", sessionHandler.UpdateSession)
			adminGroup.DELETE("/sessions/:id", sessionHandler.DeleteSession)
		}
	}
}
