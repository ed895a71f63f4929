package httpv1

import (
	"github.com/Egor213/LogAnalyzer/internal/metrics"
	"github.com/Egor213/LogAnalyzer/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func ConfigureRouter(handler *echo.Echo, services *service.Services, counters *metrics.Counters) {
	handler.Use(middleware.Recover())

	c := NewStatsController(services.Stats, counters)

	v1 := handler.Group("/api/v1")
	v1.GET("/stats", c.GetReport)
	v1.POST("/stats/refresh", c.Refresh)
	v1.GET("/stats/:period", c.GetCounts)
}
