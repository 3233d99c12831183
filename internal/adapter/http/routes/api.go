package routes

import (
	"marcenaria_site/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing      = "/ping"
	PathEstimates = "/estimates"
	PathContact   = "/contact"
	PathAnalytics = "/analytics"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/latest", estimateHandler.GetLatestEstimate)
	}
}

func addContactRoutes(rg *gin.RouterGroup, contactHandler *handlers.ContactHandler) {
	contact := rg.Group(PathContact)
	{
		contact.POST("", contactHandler.SubmitContact)
		contact.GET("/:id", contactHandler.GetContact)
	}
}

func addAnalyticsRoutes(rg *gin.RouterGroup, analyticsHandler *handlers.AnalyticsHandler) {
	analytics := rg.Group(PathAnalytics)
	{
		analytics.POST("/events", analyticsHandler.TrackEvent)
	}
}
