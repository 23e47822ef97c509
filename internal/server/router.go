package server

import (
	handler "mall-bidding/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.MarketplaceServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	marketplaceHandler := handler.NewMarketplaceHandler(service)

	searches := router.Group("/searches")
	{
		searches.POST("", marketplaceHandler.SearchHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", marketplaceHandler.PlaceBidHandler)
	}

	sessions := router.Group("/sessions")
	{
		sessions.GET("/:session_id", marketplaceHandler.GetSessionHandler)
		sessions.GET("/:session_id/leaderboard", marketplaceHandler.LeaderboardHandler)
		sessions.POST("/:session_id/complete", marketplaceHandler.CompleteSessionHandler)
		sessions.POST("/:session_id/abandon", marketplaceHandler.AbandonSessionHandler)
	}

	agents := router.Group("/agents")
	{
		agents.GET("/:agent_id", marketplaceHandler.GetAgentHandler)
	}

	notifications := router.Group("/notifications")
	{
		notifications.GET("/active", marketplaceHandler.ActiveNotificationsHandler)
	}

	return router
}
