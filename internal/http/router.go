package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires middlewares and routes.
func NewRouter(
	logger *zap.Logger,
	askH *AskHandler,
	dashH *DashboardHandler,
	weighH *WeighInHandler,
	goalH *GoalHandler,
	healthz gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.POST("/api/ai", askH.Ask)
	r.GET("/api/ai/sessions/:session_id", askH.Transcript)

	households := r.Group("/api/households/:id")
	households.GET("/summary", dashH.Summary)
	households.GET("/chart", dashH.Chart)
	households.GET("/alcohol", dashH.Alcohol)
	households.GET("/weighins", weighH.List)
	households.PUT("/weighins", weighH.Upsert)
	households.GET("/goal", goalH.Get)
	households.PUT("/goal", goalH.Put)

	if healthz != nil {
		r.GET("/healthz", healthz)
	}

	return r
}

// zapLoggerMiddleware logs one line per request.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware forces Content-Type: application/json on responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
