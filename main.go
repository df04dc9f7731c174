// main.go
package main

import (
	"context"
	"log"

	"github.com/vinodbargaje/happy-paws-connect/cmd"
	"github.com/vinodbargaje/happy-paws-connect/internal/data/repository"
	"github.com/vinodbargaje/happy-paws-connect/internal/jobs"
	"github.com/vinodbargaje/happy-paws-connect/internal/realtime"
	"github.com/vinodbargaje/happy-paws-connect/internal/wire"
	"github.com/vinodbargaje/happy-paws-connect/pkg/database"
	"github.com/vinodbargaje/happy-paws-connect/pkg/metrics"
	"github.com/vinodbargaje/happy-paws-connect/pkg/utils"

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
	)

	metrics.Register()

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Realtime change feed over Postgres LISTEN/NOTIFY
	notifier := realtime.NewNotifier(db, db, config.Realtime.Channel, logger)
	go notifier.Run(ctx)

	// Periodic maintenance
	sweeper := jobs.NewSweeper(repos, notifier, logger)
	if err := sweeper.Start(ctx, config.Jobs.SweepSchedule); err != nil {
		logger.Fatal("Failed to start sweeper", zap.Error(err))
	}
	defer sweeper.Stop()

	// Wire all dependencies
	app := wire.Wiring(repos, config, notifier, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
