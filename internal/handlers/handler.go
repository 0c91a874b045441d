package handlers

import (
	"aura_display/internal/logger"
	"aura_display/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestID)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	api := router.Group("/api/v1")
	{
		h.registerDisplayRoutes(api)
		h.registerSettingsRoutes(api)
		h.registerLocationRoutes(api)
		h.registerTransitRoutes(api)
		h.registerLogRoutes(api)
	}

	// Snapshot stream on the same port.
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerDisplayRoutes(api *gin.RouterGroup) {
	api.GET("/display", h.getDisplay)
	api.GET("/display.png", h.getDisplayPNG)
	// Body example: {"target":"panel"}
	api.POST("/touch", h.touch)
	api.POST("/panel/next", h.nextPanel)
	api.POST("/refresh", h.refresh)
	api.POST("/reset", h.reset)
}

func (h *Handler) registerSettingsRoutes(api *gin.RouterGroup) {
	settings := api.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.putSettings)
		settings.PUT("/brightness", h.putBrightness)
	}
}

func (h *Handler) registerLocationRoutes(api *gin.RouterGroup) {
	api.GET("/locations", h.searchLocations)
	api.POST("/location", h.acceptLocation)
}

func (h *Handler) registerTransitRoutes(api *gin.RouterGroup) {
	api.GET("/transit", h.getTransit)
	api.PUT("/transit", h.putTransit)
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	api.GET("/logs", h.getLogs)
}
