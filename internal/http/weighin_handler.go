package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"duoscale/internal/dateutil"
	"duoscale/internal/domain"
	"duoscale/internal/repository"
)

// WeighInHandler serves raw weigh-in rows and upserts.
type WeighInHandler struct {
	logger   *zap.Logger
	weighIns repository.WeighInRepository
	loc      *time.Location
}

func NewWeighInHandler(logger *zap.Logger, weighIns repository.WeighInRepository, loc *time.Location) *WeighInHandler {
	return &WeighInHandler{logger: logger, weighIns: weighIns, loc: loc}
}

// Upsert handles PUT /api/households/:id/weighins. One record per
// (person, date); a second write for the same key replaces the first.
func (h *WeighInHandler) Upsert(c *gin.Context) {
	var req struct {
		Date     string        `json:"date"`
		Person   domain.Person `json:"person"`
		WeightKg float64       `json:"weight_kg"`
		Drank    bool          `json:"drank"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다."})
		return
	}

	if req.Person != domain.PersonMe && req.Person != domain.PersonPartner {
		c.JSON(http.StatusBadRequest, gin.H{"error": "person은 me 또는 partner여야 합니다."})
		return
	}

	if req.Date == "" {
		req.Date = dateutil.Today(h.loc)
	}
	if _, err := dateutil.ParseISO(req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "날짜를 올바르게 입력해주세요."})
		return
	}

	if req.WeightKg <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "몸무게를 올바르게 입력해주세요."})
		return
	}

	record := domain.WeighIn{
		Date:     req.Date,
		Person:   req.Person,
		WeightKg: dateutil.Round1(req.WeightKg),
		Drank:    req.Drank,
	}
	if err := h.weighIns.Upsert(c.Request.Context(), c.Param("id"), record); err != nil {
		h.logger.Error("upsert weigh-in failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 실패"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"record": record})
}

// List handles GET /api/households/:id/weighins.
func (h *WeighInHandler) List(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")

	var (
		records []domain.WeighIn
		err     error
	)
	if start == "" && end == "" {
		records, err = h.weighIns.ListByHousehold(c.Request.Context(), c.Param("id"))
	} else {
		if _, perr := dateutil.ParseISO(start); perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "날짜를 올바르게 입력해주세요."})
			return
		}
		if _, perr := dateutil.ParseISO(end); perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "날짜를 올바르게 입력해주세요."})
			return
		}
		records, err = h.weighIns.ListByDateRange(c.Request.Context(), c.Param("id"), start, end)
	}
	if err != nil {
		h.logger.Error("list weigh-ins failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "불러오기 실패"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}
