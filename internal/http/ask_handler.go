package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"duoscale/internal/domain"
	"duoscale/internal/service"
)

// AskHandler serves the question-answering endpoint and session transcripts.
type AskHandler struct {
	logger     *zap.Logger
	askService *service.AskService
	limiter    service.AskRateLimiter
}

// NewAskHandler builds an AskHandler. limiter may be nil (no rate limiting).
func NewAskHandler(logger *zap.Logger, askService *service.AskService, limiter service.AskRateLimiter) *AskHandler {
	return &AskHandler{logger: logger, askService: askService, limiter: limiter}
}

// Ask handles POST /api/ai.
func (h *AskHandler) Ask(c *gin.Context) {
	var req struct {
		Question  string          `json:"question"`
		SessionID string          `json:"session_id"`
		Summary   *domain.Summary `json:"summary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid ask request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrEmptyQuestion.Error()})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	answer, err := h.askService.Ask(c.Request.Context(), sessionID, req.Question, req.Summary)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuestion) || errors.Is(err, domain.ErrNoSummary) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("ask failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer, "session_id": sessionID})
}

// Transcript handles GET /api/ai/sessions/:session_id.
func (h *AskHandler) Transcript(c *gin.Context) {
	messages := h.askService.Transcript(c.Param("session_id"))
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
