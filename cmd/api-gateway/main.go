package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/theater-scheduler/api/swagger"
	internalhandler "github.com/noah-isme/theater-scheduler/internal/handler"
	"github.com/noah-isme/theater-scheduler/internal/middleware"
	"github.com/noah-isme/theater-scheduler/internal/repository"
	"github.com/noah-isme/theater-scheduler/internal/roleassign"
	"github.com/noah-isme/theater-scheduler/internal/service"
	"github.com/noah-isme/theater-scheduler/internal/solver"
	"github.com/noah-isme/theater-scheduler/pkg/cache"
	"github.com/noah-isme/theater-scheduler/pkg/config"
	"github.com/noah-isme/theater-scheduler/pkg/jobs"
	"github.com/noah-isme/theater-scheduler/pkg/logger"
	"github.com/noah-isme/theater-scheduler/pkg/middleware/cors"
	"github.com/noah-isme/theater-scheduler/pkg/middleware/requestid"
	"github.com/noah-isme/theater-scheduler/pkg/storage"
)

// @title Theater Scheduler API
// @description Schedule solving and role assignment for multi-stage theater runs.
// @version 1.0
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			log.Fatal("connect redis", zap.Error(err))
		}
		cacheRepo = repository.NewCacheRepository(redisClient, log)
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Scheduler.CacheTTL, log, cfg.Redis.Enabled)

	scenarioRepo := repository.NewScenarioRepository()
	backend := solver.NewBackend()
	scheduleSolver := solver.NewScheduleSolver(backend, cfg.Scheduler.Workers)
	assigner := roleassign.New()
	scenarioSvc := service.NewScenarioService(scenarioRepo, scheduleSolver, assigner, cacheSvc, metricsSvc, log)
	scenarioHandler := internalhandler.NewScenarioHandler(scenarioSvc)
	metricsHandler := internalhandler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestid.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(cors.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)
	r.GET("/metrics/snapshot", metricsHandler.Snapshot)

	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		scenarios := api.Group("/scenarios")
		{
			scenarios.POST("", scenarioHandler.Create)
			scenarios.POST("/:id/solve", scenarioHandler.Solve)
			scenarios.GET("/:id/status", scenarioHandler.Status)
			scenarios.GET("/:id/schedule", scenarioHandler.Schedule)
			scenarios.GET("/:id/assignments", scenarioHandler.Assignments)
			scenarios.GET("/:id/gantt", scenarioHandler.Gantt)
			scenarios.PUT("/:id/assignments", scenarioHandler.OverrideAssignment)
			scenarios.POST("/:id/roles/auto-generate", scenarioHandler.AutoGenerateRoles)
			scenarios.POST("/:id/people", scenarioHandler.AddPerson)
			scenarios.GET("/:id/people", scenarioHandler.ListPeople)
			scenarios.DELETE("/:id/people/:personId", scenarioHandler.RemovePerson)
			scenarios.POST("/:id/roles", scenarioHandler.AddRole)
			scenarios.GET("/:id/roles", scenarioHandler.ListRoles)
			scenarios.DELETE("/:id/roles/:roleId", scenarioHandler.RemoveRole)
			scenarios.PUT("/:id/person-production-roles", scenarioHandler.UpsertPersonProductionRole)
			scenarios.GET("/:id/person-production-roles", scenarioHandler.ListPersonProductionRoles)
		}
	}

	var exportQueue *jobs.Queue
	if cfg.Export.Enabled {
		localStorage, err := storage.NewLocalStorage(cfg.Export.StorageDir)
		if err != nil {
			log.Fatal("init export storage", zap.Error(err))
		}
		signer := storage.NewSignedURLSigner(cfg.Export.SignedURLSecret, cfg.Export.SignedURLTTL)
		exportSvc := service.NewExportService(scenarioSvc, localStorage, signer, service.ExportServiceConfig{
			APIPrefix: cfg.APIPrefix,
			ResultTTL: cfg.Export.SignedURLTTL,
		}, log)
		exportJobRepo := repository.NewExportJobRepository()
		scheduleExportSvc := service.NewScheduleExportService(exportJobRepo, nil, exportSvc, log)
		exportQueue = jobs.NewQueue("schedule_export", scheduleExportSvc.Handle, jobs.QueueConfig{
			Workers:    cfg.Export.WorkerConcurrency,
			MaxRetries: cfg.Export.WorkerRetries,
			Logger:     log,
		})
		scheduleExportSvc.SetQueue(exportQueue)
		exportQueue.Start(context.Background())

		exportHandler := internalhandler.NewExportHandler(scheduleExportSvc, exportSvc)
		api.POST("/scenarios/:id/export", exportHandler.RequestExport)
		api.GET("/export/:jobId/status", exportHandler.ExportStatus)
		api.GET("/export/:token", exportHandler.Download)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Info("starting server", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if exportQueue != nil {
		exportQueue.Stop()
	}
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	}
}
