package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	api "shareit-backend/internal/api/http"
	"shareit-backend/internal/config"
	"shareit-backend/internal/logger"
	"shareit-backend/internal/repository/postgres"
	"shareit-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/server.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.ValidateServer(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ShareIt server", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	userSvc := service.NewUserService(store.UserRepository)
	itemSvc := service.NewItemService(
		store.ItemRepository,
		store.UserRepository,
		store.ItemRequestRepository,
		store.BookingRepository,
		store.CommentRepository,
	)
	requestSvc := service.NewItemRequestService(
		store.ItemRequestRepository,
		store.ItemRepository,
		store.UserRepository,
	)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.ItemRepository,
		store.UserRepository,
		cfg.Booking.CountRejectedConflicts,
	)

	router := api.NewRouter(userSvc, itemSvc, requestSvc, bookingSvc)

	logger.Info("ShareIt server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
