package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"duoscale/internal/dateutil"
	"duoscale/internal/domain"
	"duoscale/internal/repository"
	"duoscale/internal/service"
)

// Range menu exposed to clients; anything else falls back to the default.
var allowedRangeDays = map[int]bool{7: true, 30: true, 90: true}

// DashboardHandler serves the summary, chart and alcohol-calendar views.
type DashboardHandler struct {
	logger           *zap.Logger
	summaries        *service.SummaryService
	weighIns         repository.WeighInRepository
	loc              *time.Location
	defaultRangeDays int
}

func NewDashboardHandler(
	logger *zap.Logger,
	summaries *service.SummaryService,
	weighIns repository.WeighInRepository,
	loc *time.Location,
	defaultRangeDays int,
) *DashboardHandler {
	return &DashboardHandler{
		logger:           logger,
		summaries:        summaries,
		weighIns:         weighIns,
		loc:              loc,
		defaultRangeDays: defaultRangeDays,
	}
}

func (h *DashboardHandler) rangeDays(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("range"))
	if err != nil || !allowedRangeDays[n] {
		return h.defaultRangeDays
	}
	return n
}

// Summary handles GET /api/households/:id/summary.
func (h *DashboardHandler) Summary(c *gin.Context) {
	today := dateutil.Today(h.loc)
	summary, err := h.summaries.BuildForHousehold(c.Request.Context(), c.Param("id"), today, h.rangeDays(c))
	if err != nil {
		h.logger.Error("build summary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "요약을 생성하지 못했습니다."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// Chart handles GET /api/households/:id/chart.
func (h *DashboardHandler) Chart(c *gin.Context) {
	records, err := h.weighIns.ListByHousehold(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("list weigh-ins failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "불러오기 실패"})
		return
	}

	today := dateutil.Today(h.loc)
	points, err := service.BuildChartPoints(records, today, h.rangeDays(c))
	if err != nil {
		h.logger.Error("build chart failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "불러오기 실패"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}

// Alcohol handles GET /api/households/:id/alcohol.
func (h *DashboardHandler) Alcohol(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = dateutil.Today(h.loc)[:7]
	}

	records, err := h.weighIns.ListByHousehold(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("list weigh-ins failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "불러오기 실패"})
		return
	}

	view, err := service.BuildAlcoholMonth(records, month)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "월 형식이 올바르지 않습니다."})
			return
		}
		h.logger.Error("build alcohol month failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "불러오기 실패"})
		return
	}
	c.JSON(http.StatusOK, view)
}
