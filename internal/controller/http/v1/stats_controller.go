package httpv1

import (
	"errors"
	"net/http"

	logginghelper "github.com/Egor213/LogAnalyzer/internal/controller/common/logging"
	"github.com/Egor213/LogAnalyzer/internal/domain"
	"github.com/Egor213/LogAnalyzer/internal/metrics"
	"github.com/Egor213/LogAnalyzer/internal/service"
	"github.com/labstack/echo/v4"
)

var (
	ErrNoReport      = errors.New("no report computed yet")
	ErrUnknownPeriod = errors.New("unknown period, want hourly, daily or monthly")
)

var periodsByPath = map[string]domain.Period{
	"hourly":  domain.PeriodHour,
	"daily":   domain.PeriodDay,
	"monthly": domain.PeriodMonth,
}

type errorResponse struct {
	Error string `json:"error"`
}

type countsResponse struct {
	Source string               `json:"source"`
	Period domain.Period        `json:"period"`
	Counts []domain.PeriodCount `json:"counts"`
}

type StatsController struct {
	statsService service.Stats
	counters     *metrics.Counters
}

func NewStatsController(s service.Stats, cnt *metrics.Counters) *StatsController {
	return &StatsController{
		statsService: s,
		counters:     cnt,
	}
}

func (c *StatsController) GetReport(ctx echo.Context) error {
	r, ok := c.statsService.LastReport()
	if !ok {
		return c.fail(ctx, "GetReport", http.StatusNotFound, ErrNoReport)
	}
	c.counters.HTTPRequests.Inc("GetReport", "ok")
	return ctx.JSON(http.StatusOK, r)
}

func (c *StatsController) Refresh(ctx echo.Context) error {
	r, err := c.statsService.Analyze(ctx.Request().Context())
	if err != nil {
		return c.fail(ctx, "Refresh", http.StatusInternalServerError, err)
	}
	c.counters.HTTPRequests.Inc("Refresh", "ok")
	return ctx.JSON(http.StatusOK, r)
}

func (c *StatsController) GetCounts(ctx echo.Context) error {
	period, ok := periodsByPath[ctx.Param("period")]
	if !ok {
		return c.fail(ctx, "GetCounts", http.StatusBadRequest, ErrUnknownPeriod)
	}

	r, ok := c.statsService.LastReport()
	if !ok {
		return c.fail(ctx, "GetCounts", http.StatusNotFound, ErrNoReport)
	}

	c.counters.HTTPRequests.Inc("GetCounts", "ok")
	return ctx.JSON(http.StatusOK, countsResponse{
		Source: r.Source,
		Period: period,
		Counts: r.Counts(period),
	})
}

func (c *StatsController) fail(ctx echo.Context, handler string, code int, err error) error {
	c.counters.HTTPRequests.Inc(handler, "failed")
	if code >= http.StatusInternalServerError {
		logginghelper.LogRequestFailed(handler, err)
	}
	return ctx.JSON(code, errorResponse{Error: err.Error()})
}
