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

	"github.com/shenikar/flood_risk_system/internal/app"
	"github.com/shenikar/flood_risk_system/internal/config"
	v1 "github.com/shenikar/flood_risk_system/internal/handler/http/v1"
	"github.com/shenikar/flood_risk_system/pkg/logger"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/flood_risk_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Flood Risk System API
// @version 1.0
// @description Flood risk scoring over spatial layers and a rainfall field.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Сборка зависимостей
	deps, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer deps.Close()

	// Запуск воркера оповещений
	if deps.Worker != nil {
		deps.Worker.Start(ctx)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(deps.Service, log)

	// Настройка Gin роутера
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), deps.Recorder.GinMiddleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики и Swagger UI
	router.GET("/metrics", gin.WrapH(deps.Recorder.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
		return
	}

	log.Info("Server gracefully stopped")
}
