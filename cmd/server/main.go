package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"taskboard/internal/config"
	"taskboard/internal/directory"
	"taskboard/internal/events"
	"taskboard/internal/handler"
	"taskboard/internal/httpserver"
	"taskboard/internal/repository"
	"taskboard/internal/service/task"
	"taskboard/pkg/cache"
	"taskboard/pkg/db"
	"taskboard/pkg/logger"
	"taskboard/pkg/mq"
	"taskboard/pkg/redis"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting taskboard...",
		zap.String("db_host", cfg.DB.Host),
		zap.Int("db_port", cfg.DB.Port),
		zap.String("port", cfg.Server.Port),
	)

	// DB
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("Failed to init DB", zap.Error(err))
	}
	defer dbConn.Close()

	taskRepo := repository.NewTaskRepository(dbConn, log)

	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := taskRepo.EnsureSchema(schemaCtx); err != nil {
		schemaCancel()
		log.Fatal("Failed to ensure schema", zap.Error(err))
	}
	schemaCancel()

	// Optional list cache
	var listCache *cache.Cache
	if cfg.Redis.Addr != "" {
		redisClient, err := redis.NewClient(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to init Redis", zap.Error(err))
		}
		defer redisClient.Close()
		listCache = cache.New(redisClient, "taskboard:", 30*time.Second)
		log.Info("List cache enabled", zap.String("redis_addr", cfg.Redis.Addr))
	}

	// Optional event publisher
	var publisher events.Publisher = events.NopPublisher{}
	var mqPublisher *mq.Publisher
	if cfg.MQ.URL != "" {
		mqPublisher, err = mq.NewPublisher(cfg.MQ.URL)
		if err != nil {
			log.Fatal("Failed to init MQ publisher", zap.Error(err))
		}
		publisher = mqPublisher
		log.Info("Task event publishing enabled")
	}
	defer publisher.Close()

	users := directory.New(cfg.Team)
	taskService := task.NewService(taskRepo, users, listCache, publisher, log)

	taskHandler := handler.NewTaskHandler(taskService, log)
	userHandler := handler.NewUserHandler(users)
	router := httpserver.NewRouter(taskHandler, userHandler, log, dbConn, mqPublisher, cfg.Server.AllowOrigin)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	log.Info("taskboard is fully initialized and running",
		zap.String("http_port", cfg.Server.Port),
		zap.Int("team_members", len(users.Members())),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down taskboard gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}

	log.Info("taskboard shutdown complete")
}
