package rest

import (
	"net/http"

	"github.com/Gunvolt24/cloak_gw/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter - gin с общими middleware. otelServiceName == "" выключает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api", httpx.AuthMiddleware(h.svc.Auth))

	api.GET("/reference/:key", h.getReference)

	cache := api.Group("/cache")
	cache.GET("/stats", h.cacheStats)
	cache.GET("/jobs", h.cacheJobs)
	cache.POST("/clear", h.clearCache)
	cache.POST("/warmup", h.warmUpCache)

	flows := api.Group("/flows")
	flows.GET("", h.listFlows)
	flows.POST("", h.createFlow)
	flows.GET("/:id", h.getFlow)
	flows.PUT("/:id", h.updateFlow)
	flows.DELETE("/:id", h.deleteFlow)
	flows.POST("/:id/filters", h.createFilter)

	filters := api.Group("/filters")
	filters.PUT("/:id", h.updateFilter)
	filters.DELETE("/:id", h.deleteFilter)

	api.GET("/statistics", h.getStatistics)
	api.GET("/clicks", h.listClicks)
	api.GET("/logs", h.listCallLogs)

	return r
}
