package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/flood_risk_system/internal/layers"
	"github.com/shenikar/flood_risk_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	riskService service.RiskService
	logger      *logrus.Logger
	validate    *validator.Validate
}

func NewHandler(riskService service.RiskService, logger *logrus.Logger) *Handler {
	validate := validator.New()
	// layer - имя из белого списка слоев
	_ = validate.RegisterValidation("layer", func(fl validator.FieldLevel) bool {
		return layers.IsKnown(fl.Field().String())
	})

	return &Handler{
		riskService: riskService,
		logger:      logger,
		validate:    validate,
	}
}

// serviceError отвечает 400 на ошибки входных данных и 500 на все остальное
func (h *Handler) serviceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownLayer),
		errors.Is(err, service.ErrInvalidBBox),
		errors.Is(err, service.ErrInvalidLocation):
		log.WithError(err).Warn("Rejected by service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindQuery разбирает и валидирует параметры запроса; при ошибке уже отвечает 400
func (h *Handler) bindQuery(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Assess flood risk at a point
// @Description Score flood risk at a coordinate. Without rainfall the nearest sample of the current rainfall field is used.
// @Tags Risk
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param rainfall query number false "Rainfall, mm"
// @Success 200 {object} AssessmentResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /risk [get]
func (h *Handler) riskAt(c *gin.Context) {
	log := h.logger.WithField("method", "riskAt")

	var input RiskQuery
	if !h.bindQuery(c, log, &input) {
		return
	}

	assessment, err := h.riskService.RiskAt(c.Request.Context(), *input.Lat, *input.Lng, input.Rainfall)
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAssessmentResponse(assessment))
}

// @Summary Search a layer
// @Description Case-insensitive substring search over the searchable columns of a layer. Empty q on the areas layer returns the top areas by baseline risk.
// @Tags Layers
// @Produce json
// @Param layer query string true "Layer name" Enums(rivers, roads, districts, areas)
// @Param q query string false "Search text"
// @Param district query string false "District filter"
// @Param limit query int false "Result limit" default(50)
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 400 {object} map[string]string "Unknown layer or invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /search [get]
func (h *Handler) searchLayer(c *gin.Context) {
	log := h.logger.WithField("method", "searchLayer")

	var input SearchQuery
	if !h.bindQuery(c, log, &input) {
		return
	}

	fc, err := h.riskService.SearchLayer(c.Request.Context(), input.Layer, input.Q, input.District, input.Limit)
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, fc)
}

// @Summary Top areas by baseline risk
// @Tags Areas
// @Produce json
// @Param district query string false "District filter"
// @Param limit query int false "Result limit" default(5)
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /areas/top [get]
func (h *Handler) topAreas(c *gin.Context) {
	log := h.logger.WithField("method", "topAreas")

	var input TopAreasQuery
	if !h.bindQuery(c, log, &input) {
		return
	}

	fc, err := h.riskService.TopAreas(c.Request.Context(), input.District, input.Limit)
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, fc)
}

// @Summary Live risk of the top areas
// @Description Enrich the top areas with live risk, deduplicate by area name and rank.
// @Tags Areas
// @Produce json
// @Param limit query int false "Result limit" default(5)
// @Success 200 {array} AssessmentResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /areas/updates [get]
func (h *Handler) topUpdates(c *gin.Context) {
	log := h.logger.WithField("method", "topUpdates")

	var input TopAreasQuery
	if !h.bindQuery(c, log, &input) {
		return
	}

	items, err := h.riskService.TopUpdates(c.Request.Context(), input.Limit)
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAssessmentResponses(items))
}

// @Summary Scan an area
// @Description Score features of the scan layers inside a bounding box. Results are ranked by risk and capped.
// @Tags Risk
// @Accept json
// @Produce json
// @Param bbox body ScanRequest true "Bounding box"
// @Success 200 {array} AssessmentResponse
// @Failure 400 {object} map[string]string "Invalid request body or bounding box"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /scan [post]
func (h *Handler) scan(c *gin.Context) {
	var input ScanRequest
	log := h.logger.WithField("method", "scan")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.riskService.Scan(c.Request.Context(), ScanRequestToBBox(input))
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAssessmentResponses(items))
}

// @Summary Layer features in a bounding box
// @Description Features of a layer intersecting the bounding box. Without a bounding box the configured region is used.
// @Tags Layers
// @Produce json
// @Param layer path string true "Layer name" Enums(rivers, roads, districts, areas)
// @Param min_lat query number false "Min latitude"
// @Param min_lng query number false "Min longitude"
// @Param max_lat query number false "Max latitude"
// @Param max_lng query number false "Max longitude"
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 400 {object} map[string]string "Unknown layer or invalid bounding box"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /layers/{layer} [get]
func (h *Handler) layerFeatures(c *gin.Context) {
	layer := c.Param("layer")
	log := h.logger.WithField("method", "layerFeatures").WithField("layer", layer)

	if !layers.IsKnown(layer) {
		log.Warn("Unknown layer requested")
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrUnknownLayer.Error()})
		return
	}

	var input BBoxQuery
	if !h.bindQuery(c, log, &input) {
		return
	}
	bbox, ok := BBoxQueryToModel(input)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bbox requires min_lat, min_lng, max_lat and max_lng"})
		return
	}

	fc, err := h.riskService.LayerFeatures(c.Request.Context(), layer, bbox)
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, fc)
}

// @Summary Layer statistics
// @Description Number of features per layer intersecting the configured region.
// @Tags Layers
// @Produce json
// @Success 200 {object} LayerStatsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /layers/stats [get]
func (h *Handler) layerStats(c *gin.Context) {
	log := h.logger.WithField("method", "layerStats")

	stats, err := h.riskService.LayerStats(c.Request.Context(), nil)
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, LayerStatsResponse{Layers: stats})
}

// @Summary Current rainfall field
// @Tags Rainfall
// @Produce json
// @Success 200 {object} RainfallFieldResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /rainfall [get]
func (h *Handler) rainfallField(c *gin.Context) {
	log := h.logger.WithField("method", "rainfallField")

	field, err := h.riskService.RainfallField(c.Request.Context())
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToRainfallResponse(field))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Get application readiness
// @Description Check that the spatial datastore is reachable
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Ready"
// @Failure 503 {object} map[string]string "Datastore unavailable"
// @Router /system/ready [get]
func (h *Handler) readyCheck(c *gin.Context) {
	if err := h.riskService.Ready(c.Request.Context()); err != nil {
		h.logger.WithField("method", "readyCheck").WithError(err).Warn("Datastore is not ready")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
