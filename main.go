// main.go
package main

import (
	"log"

	"shareit/cmd"
	"shareit/internal/data/repository"
	"shareit/internal/events"
	"shareit/internal/wire"
	"shareit/migrations"
	"shareit/pkg/database"
	"shareit/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Bool("forbid_decision_after_start", config.Booking.ForbidDecisionAfterStart),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.Migrate {
		if err := database.Migrate(migrations.FS, config.Database.MigrationURL(), logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// Booking events go to Kafka when brokers are configured
	var publisher events.Publisher = events.NoopPublisher{}
	if len(config.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(config.Kafka.Brokers, config.Kafka.Topic, logger)
		logger.Info("Kafka publisher enabled",
			zap.Strings("brokers", config.Kafka.Brokers),
			zap.String("topic", config.Kafka.Topic),
		)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close event publisher", zap.Error(err))
		}
	}()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, publisher, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server exited with error", zap.Error(err))
	}
}
