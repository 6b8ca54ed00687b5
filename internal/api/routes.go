package api

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/", handler.Index)

	api := router.Group("/api")
	{
		api.GET("/catalog", handler.GetCatalog)
		api.GET("/transactions/recent", handler.GetRecentTransactions)
		api.POST("/predict", handler.Predict)
		api.GET("/health", handler.Health)
	}
}
