package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripdiary-service/internal/infrastructure/config"
	"tripdiary-service/internal/infrastructure/persistence"
	"tripdiary-service/internal/infrastructure/router"
	mongoRepo "tripdiary-service/internal/interface/repository"
	"tripdiary-service/internal/usecase"
	"tripdiary-service/pkg/logger"
	"tripdiary-service/pkg/metrics"
	"tripdiary-service/pkg/utils"
	"tripdiary-service/templates"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Tripdiary Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}
	log.Info("Loaded configuration",
		"version", cfg.AppVersion,
		"processInterval", cfg.ProcessInterval.String(),
		"defaultDestination", cfg.DefaultDestination)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up repositories
	documentRepo := mongoRepo.NewMongoDocumentRepository(db)
	itineraryRepo := mongoRepo.NewMongoItineraryRepository(db)
	airportRepo := mongoRepo.NewGormAirportRepository(gormDB)

	// Set up metrics
	m := metrics.NewMetrics("tripdiary")

	// Set up venue extraction and content routing
	venueExtractor := utils.NewVenueExtractor(log)
	contentRouter := router.NewContentRouter(log)
	contentRouter.Register(templates.NewRestaurantContentHandler(venueExtractor, log))
	contentRouter.Register(templates.NewAttractionContentHandler(venueExtractor, log))
	contentRouter.Register(templates.NewEventContentHandler(venueExtractor, log))

	// Set up the fusion pipeline
	fuser := usecase.NewTripFuser(log)
	scheduleBuilder := usecase.NewScheduleBuilder(log)
	tripProcessor := usecase.NewTripProcessor(
		documentRepo,
		itineraryRepo,
		airportRepo,
		contentRouter,
		fuser,
		scheduleBuilder,
		m,
		log,
	)

	// Start document processor in a goroutine
	go func() {
		processTicker := time.NewTicker(cfg.ProcessInterval)
		defer processTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Document processor stopped")
				return
			case <-processTicker.C:
				log.Info("Processing pending documents")
				if err := tripProcessor.ProcessPendingDocuments(ctx); err != nil {
					log.Error("Error processing documents", "error", err)
				}
			}
		}
	}()

	// Set up HTTP server for metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Tripdiary Service stopped")
}
