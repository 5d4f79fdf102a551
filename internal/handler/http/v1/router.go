package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Use(RequestLogger(h.logger))

	// Оценка риска
	api.GET("/risk", h.riskAt)
	api.POST("/scan", h.scan)

	// Поиск и выборки по слоям
	api.GET("/search", h.searchLayer)
	layers := api.Group("/layers")
	{
		layers.GET("/stats", h.layerStats)
		layers.GET("/:layer", h.layerFeatures)
	}

	areas := api.Group("/areas")
	{
		areas.GET("/top", h.topAreas)
		areas.GET("/updates", h.topUpdates)
	}

	api.GET("/rainfall", h.rainfallField)

	// Маршруты Health-check
	api.GET("/system/health", h.healthCheck)
	api.GET("/system/ready", h.readyCheck)
}
