package routes

import (
	"inventhub-api/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API group
	api := router.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"message": "InventHub API - Collaborative Innovation Platform",
			})
		})

		// Users
		users := api.Group("/users")
		{
			users.POST("", controllers.CreateUser)
			users.GET("", controllers.GetUsers)
			users.GET("/:id", controllers.GetUser)
			users.PUT("/:id", controllers.UpdateUser)
		}

		// Inventions
		inventions := api.Group("/inventions")
		{
			inventions.POST("", controllers.CreateInvention)
			inventions.GET("", controllers.GetInventions)
			inventions.GET("/public", controllers.GetPublicInventions)
			inventions.GET("/search", controllers.SearchInventions)
			inventions.GET("/:id", controllers.GetInvention)
			inventions.PUT("/:id", controllers.UpdateInvention)
			inventions.POST("/:id/vote", controllers.VoteInvention)
			inventions.GET("/:id/votes", controllers.GetInventionVotes)
			inventions.POST("/:id/rate", controllers.RateInvention)
			inventions.GET("/:id/ratings", controllers.GetInventionRatings)
			inventions.POST("/:id/comments", controllers.CreateComment)
			inventions.GET("/:id/comments", controllers.GetComments)
			inventions.POST("/:id/upload-model", controllers.UploadInventionModel)
		}

		// Peer reviews
		reviews := api.Group("/peer-reviews")
		{
			reviews.POST("", controllers.CreatePeerReview)
			reviews.GET("", controllers.GetPeerReviews)
			reviews.PUT("/:id", controllers.UpdatePeerReview)
		}

		// Mentorship
		mentorship := api.Group("/mentorship-requests")
		{
			mentorship.POST("", controllers.CreateMentorshipRequest)
			mentorship.GET("", controllers.GetMentorshipRequests)
			mentorship.PUT("/:id", controllers.UpdateMentorshipRequest)
		}

		// Notifications
		api.GET("/notifications/:user_id", controllers.GetNotifications)
		api.PUT("/notifications/:id/read", controllers.MarkNotificationRead)

		// Groups
		groups := api.Group("/groups")
		{
			groups.POST("", controllers.CreateGroup)
			groups.GET("", controllers.GetGroups)
			groups.GET("/:id", controllers.GetGroup)
			groups.POST("/:id/join", controllers.JoinGroup)
			groups.POST("/:id/leave", controllers.LeaveGroup)
		}

		// Chat
		api.POST("/chat/messages", controllers.SendChatMessage)
		api.GET("/chat/messages/:group_id", controllers.GetChatMessages)
		api.GET("/ws/:group_id", controllers.ChatWebSocket)

		// Public suggestions
		suggestions := api.Group("/suggestions")
		{
			suggestions.POST("", controllers.CreateSuggestion)
			suggestions.GET("", controllers.GetSuggestions)
			suggestions.POST("/:id/vote", controllers.VoteSuggestion)
		}

		// Analytics
		api.GET("/analytics/summary", controllers.GetAnalyticsSummary)
	}
}
