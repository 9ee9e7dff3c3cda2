package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"risun-backend/controller"
	"risun-backend/utils"
	"risun-backend/utils/logger"
	"risun-backend/worker"
)

// @title RISUN Backend API
// @version 1.0.0
// @description Authentication and saved-location API for the RISUN solar grid management platform.
// @BasePath /api
func main() {
	cfg, err := utils.GetConfig()
	if err != nil {
		panic(err)
	}

	log := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	log.Infof("Starting %s v%s (%s)", cfg.AppName, cfg.AppVersion, cfg.AppEnv)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	ctrl, err := controller.NewController(cfg, log, router)
	if err != nil {
		log.Fatalf("Failed to initialize controller: %v", err)
	}

	provisioner := worker.NewService(worker.DefaultWorkerConfig(cfg), cfg, ctrl.DB, log)
	if err := provisioner.StartInBackground(context.Background()); err != nil {
		log.Errorf("Failed to start table provisioner: %v", err)
	}

	go func() {
		if err := ctrl.RegisterRoutes(); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	provisioner.Stop()
}
