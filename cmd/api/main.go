package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/William-datamaster/table-tennis/api/swagger"
	"github.com/William-datamaster/table-tennis/internal/handler"
	"github.com/William-datamaster/table-tennis/internal/middleware"
	"github.com/William-datamaster/table-tennis/internal/models"
	"github.com/William-datamaster/table-tennis/internal/repository"
	"github.com/William-datamaster/table-tennis/internal/service"
	"github.com/William-datamaster/table-tennis/pkg/config"
	"github.com/William-datamaster/table-tennis/pkg/logger"
	corsmiddleware "github.com/William-datamaster/table-tennis/pkg/middleware/cors"
	reqidmiddleware "github.com/William-datamaster/table-tennis/pkg/middleware/requestid"
)

// @title Table Tennis Lesson Tracker API
// @version 0.1.0
// @description Records table-tennis lesson sessions against remotely loaded rosters
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()

	rosterStore := repository.NewRosterStore()
	ledger := repository.NewLedgerRepository()

	rosters := service.NewRosterService(rosterStore, cfg.Roster, metrics, logr)

	var sender service.MailSender
	if cfg.Notify.Enabled && cfg.Notify.ResendKey != "" {
		sender = service.NewResendSender(cfg.Notify.ResendKey, cfg.Notify.FromAddress)
	}
	notifications := service.NewNotificationService(rosterStore, sender, cfg.Notify, metrics, logr)
	notifications.Start(context.Background())
	defer notifications.Stop()

	lessons := service.NewLessonService(ledger, rosterStore, notifications, nil, metrics, logr)
	exports := service.NewExportService(lessons, cfg.Export, metrics, logr, nil, nil)

	// One-shot roster load; the gate keeps mutations out until it settles.
	go func() {
		if err := rosters.Load(context.Background()); err != nil {
			logr.Warn("startup roster load failed", zap.Error(err))
		}
	}()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if rosterStore.State() == models.RosterStateLoading {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	metricsHandler := handler.NewMetricsHandler(metrics)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	lessonHandler := handler.NewLessonHandler(lessons, exports)
	rosterHandler := handler.NewRosterHandler(rosters)

	api := r.Group(cfg.APIPrefix)
	{
		roster := api.Group("/roster")
		roster.GET("/students", rosterHandler.Students)
		roster.GET("/teachers", rosterHandler.Teachers)
		roster.GET("/status", rosterHandler.Status)
		roster.POST("/reload", rosterHandler.Reload)

		lessonRoutes := api.Group("/lessons")
		lessonRoutes.GET("", lessonHandler.List)
		lessonRoutes.GET("/export", lessonHandler.Export)
		lessonRoutes.POST("", middleware.RosterGate(rosterStore), lessonHandler.Create)
		lessonRoutes.DELETE("/:id", middleware.RosterGate(rosterStore), lessonHandler.Delete)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
