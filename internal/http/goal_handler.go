package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"duoscale/internal/dateutil"
	"duoscale/internal/domain"
	"duoscale/internal/repository"
	"duoscale/internal/service"
)

// GoalHandler serves per-member goal settings and progress.
type GoalHandler struct {
	logger   *zap.Logger
	profiles repository.ProfileRepository
	weighIns repository.WeighInRepository
	loc      *time.Location
}

func NewGoalHandler(logger *zap.Logger, profiles repository.ProfileRepository, weighIns repository.WeighInRepository, loc *time.Location) *GoalHandler {
	return &GoalHandler{logger: logger, profiles: profiles, weighIns: weighIns, loc: loc}
}

func personParam(c *gin.Context) (domain.Person, bool) {
	person := domain.Person(c.Query("person"))
	if person == "" {
		person = domain.PersonMe
	}
	if person != domain.PersonMe && person != domain.PersonPartner {
		return "", false
	}
	return person, true
}

// Get handles GET /api/households/:id/goal.
func (h *GoalHandler) Get(c *gin.Context) {
	person, ok := personParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "person은 me 또는 partner여야 합니다."})
		return
	}

	profile, err := h.profiles.Get(c.Request.Context(), c.Param("id"), person)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		h.logger.Error("get profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "불러오기 실패"})
		return
	}
	profile.Person = person

	records, err := h.weighIns.ListByHousehold(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("list weigh-ins failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "불러오기 실패"})
		return
	}

	today := dateutil.Today(h.loc)
	series := service.ProjectSeries(records, person, "", today)
	c.JSON(http.StatusOK, gin.H{"goal": service.BuildGoalStatus(profile, series, today)})
}

// Put handles PUT /api/households/:id/goal.
func (h *GoalHandler) Put(c *gin.Context) {
	var req struct {
		Person        domain.Person `json:"person"`
		GoalKg        *float64      `json:"goal_kg"`
		DietStartDate string        `json:"diet_start_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다."})
		return
	}

	if req.Person != domain.PersonMe && req.Person != domain.PersonPartner {
		c.JSON(http.StatusBadRequest, gin.H{"error": "person은 me 또는 partner여야 합니다."})
		return
	}
	if req.GoalKg != nil && *req.GoalKg <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "목표 체중을 올바르게 입력해주세요."})
		return
	}
	if req.DietStartDate != "" {
		if _, err := dateutil.ParseISO(req.DietStartDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "날짜를 올바르게 입력해주세요."})
			return
		}
	}

	profile := domain.Profile{
		Person:        req.Person,
		GoalKg:        req.GoalKg,
		DietStartDate: req.DietStartDate,
	}
	if err := h.profiles.Upsert(c.Request.Context(), c.Param("id"), profile); err != nil {
		h.logger.Error("upsert profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 실패"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
