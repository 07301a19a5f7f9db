package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"duoscale/internal/config"
	"duoscale/internal/db"
	apihttp "duoscale/internal/http"
	"duoscale/internal/llm"
	"duoscale/internal/repository"
	"duoscale/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	var weighInRepo repository.WeighInRepository = repository.NewPgWeighInRepository(pool)
	memberRepo := repository.NewPgMemberRepository(pool)
	profileRepo := repository.NewPgProfileRepository(pool)

	var limiter service.AskRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			weighInRepo = repository.NewCachedWeighInRepository(weighInRepo, redisClient, logger)
			limiter = service.NewRedisAskRateLimiter(
				redisClient,
				time.Duration(cfg.AskRateWindowMinutes)*time.Minute,
				cfg.AskRateLimit,
			)
		}
		cancel()
	}

	var llmClient llm.Client
	if cfg.LLMEnabled() {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMMaxTokens, logger)
	} else {
		logger.Info("hosted model disabled, fallback answers only")
	}

	fallback := service.NewFallbackAnswerer(cfg.SelfKeywords, cfg.PartnerKeywords)
	transcripts := service.NewTranscriptRegistry()
	askSvc := service.NewAskService(llmClient, fallback, transcripts, logger)
	summarySvc := service.NewSummaryService(weighInRepo, memberRepo, logger)

	loc := cfg.Location()
	askHandler := apihttp.NewAskHandler(logger, askSvc, limiter)
	dashHandler := apihttp.NewDashboardHandler(logger, summarySvc, weighInRepo, loc, cfg.DefaultRangeDays)
	weighHandler := apihttp.NewWeighInHandler(logger, weighInRepo, loc)
	goalHandler := apihttp.NewGoalHandler(logger, profileRepo, weighInRepo, loc)

	healthz := func(c *gin.Context) {
		if err := db.Ping(c.Request.Context(), pool); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}

	router := apihttp.NewRouter(logger, askHandler, dashHandler, weighHandler, goalHandler, healthz)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
