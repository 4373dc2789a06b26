package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lab-booking/cmd"
	"lab-booking/internal/checkout"
	"lab-booking/internal/data/repository"
	"lab-booking/internal/integration/bookingapi"
	"lab-booking/internal/session"
	"lab-booking/internal/wire"
	"lab-booking/pkg/database"
	"lab-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("booking_api", config.BookingAPI.URL),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)

	bookingClient := bookingapi.NewClient(config.BookingAPI.URL, config.BookingAPI.Timeout(), logger)
	workflowOpts := checkout.Options{SubmitTimeout: config.Checkout.SubmitTimeout()}

	sessions := session.NewStore(func(log *zap.Logger) *checkout.Workflow {
		return checkout.NewWorkflow(bookingClient, workflowOpts, log)
	}, logger)

	sweepStop := make(chan struct{})
	defer close(sweepStop)
	go sessions.RunSweeper(time.Minute, config.Checkout.SessionTTL(), sweepStop)

	app := wire.Wiring(repos, sessions, config, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
