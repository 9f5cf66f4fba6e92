package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JinJinHistory/climb-hub/config"
	"github.com/JinJinHistory/climb-hub/database"
	"github.com/JinJinHistory/climb-hub/logger"
	"github.com/JinJinHistory/climb-hub/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	gin.SetMode(cfg.Server.Mode)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer database.Close(db)

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatal("database migration failed", zap.Error(err))
		}
	}

	engine, err := routes.Setup(db, log)
	if err != nil {
		log.Fatal("route setup failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
}
