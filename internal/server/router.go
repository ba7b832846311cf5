package server

import (
	"net/http"

	"sneaker-auction/internal/metrics"
	handler "sneaker-auction/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingHandler *handler.BiddingHandler, m *metrics.Metrics) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // tag every request
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	lots := router.Group("/lots")
	{
		lots.GET("", biddingHandler.ListLotsHandler)
		lots.POST("", biddingHandler.CreateLotHandler)
		lots.GET("/events", biddingHandler.LotEventsHandler)
		lots.GET("/:lot_id", biddingHandler.GetLotHandler)
		lots.GET("/:lot_id/bids", biddingHandler.GetBidsByLotHandler)
		lots.GET("/:lot_id/winning", biddingHandler.GetWinningBidHandler)
		lots.POST("/:lot_id/bids", biddingHandler.PlaceBidHandler)
	}

	settlement := router.Group("/settlement")
	{
		settlement.POST("/sweep", biddingHandler.SweepHandler)
	}

	return router
}
