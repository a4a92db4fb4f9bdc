package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arivera/clubchat/internal/app/controllers"
	"github.com/arivera/clubchat/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	clubController *controllers.ClubController,
	chatController *controllers.ChatController,
	pollController *controllers.PollController,
	eventController *controllers.EventController,
	formController *controllers.FormController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/signup", authController.Signup)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		clubs := authenticated.Group("/clubs")
		{
			clubs.GET("", clubController.GetClubs)
			clubs.GET("/search", clubController.SearchClubs)
			clubs.GET("/:id", clubController.GetClubByID)
			clubs.POST("/:id/join", clubController.JoinClub)

			clubs.GET("/:id/timeline", chatController.GetTimeline)
			clubs.POST("/:id/messages", chatController.SendMessage)
			clubs.POST("/:id/messages/:messageId/forward", chatController.ForwardMessage)

			clubs.POST("/:id/polls", pollController.CreatePoll)
			clubs.POST("/:id/events", eventController.CreateEvent)
			clubs.POST("/:id/forms", formController.CreateForm)
		}

		messages := authenticated.Group("/messages")
		{
			messages.POST("/:messageId/reactions", chatController.ToggleReaction)
			messages.POST("/:messageId/pin", chatController.TogglePin)
		}

		polls := authenticated.Group("/polls")
		{
			polls.GET("/:id", pollController.GetPollByID)
			polls.POST("/:id/votes", pollController.VotePoll)
		}

		events := authenticated.Group("/events")
		{
			events.GET("", eventController.GetEvents)
			events.GET("/:id", eventController.GetEventByID)
			events.POST("/:id/rsvp", eventController.RsvpEvent)
		}

		forms := authenticated.Group("/forms")
		{
			forms.GET("/:id", formController.GetFormByID)
			forms.POST("/:id/responses", formController.SubmitFormResponse)
		}

		me := authenticated.Group("/me")
		{
			me.GET("", userController.GetProfile)
			me.PUT("", userController.UpdateProfile)
		}
	}
}
