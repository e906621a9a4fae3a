package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"umroh-service/src/internal/config"
	"umroh-service/src/internal/jobs"
	"umroh-service/src/pkg/log"

	"github.com/hibiken/asynq"
)

func main() {

	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "UMROH_SERVICE")
	viperConfig.SetDefault("web.port", 8080)
	viperConfig.SetDefault("jobs.reminder_cron", "0 6 * * *")
	log.InitLogger(viperConfig)
	config.NewKafkaConfig(viperConfig)
	logger := log.GetLogger()
	config.LoadRedisConfig(viperConfig)
	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis()
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)

	asynqMux := asynq.NewServeMux()

	config.Bootstrap(&config.BootstrapConfig{
		DB:       db,
		App:      app,
		Log:      logger,
		Validate: validate,
		Config:   viperConfig,
		Producer: producer,
		Redis:    redisClient,
		Async:    asynqMux,
	})

	asynqServer := config.NewAsynqServer(viperConfig)
	go func() {
		if err := asynqServer.Run(asynqMux); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start asynq server: %v", err), "asynq", "")
		}
	}()

	scheduler := config.NewAsynqScheduler(viperConfig)
	if _, err := scheduler.Register(viperConfig.GetString("jobs.reminder_cron"), asynq.NewTask(jobs.TypeReminderSweep, nil)); err != nil {
		logger.Error("main", fmt.Sprintf("Failed to register reminder schedule: %v", err), "asynq", "")
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start scheduler: %v", err), "asynq", "")
		}
	}()

	webPort := viperConfig.GetInt("web.port")
	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.Info("main", "Server umroh-service is shutting down...", "graceful", "")

	_, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	asynqServer.Shutdown()
	scheduler.Shutdown()
	if producer != nil {
		producer.Close()
	}
	if err := app.Shutdown(); err != nil {
		logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
	}
	if err := db.Close(); err != nil {
		logger.Error("main", fmt.Sprintf("Error closing database: %v", err), "graceful", "")
	}

	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
