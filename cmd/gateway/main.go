package main

import (
	"flag"
	"log"
	"net/http"

	"shareit-backend/internal/config"
	"shareit-backend/internal/gateway"
	"shareit-backend/internal/logger"
)

func main() {
	configPath := flag.String("config", "config/gateway.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.ValidateGateway(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ShareIt gateway", "address", cfg.GetGatewayAddress(), "server_url", cfg.Gateway.ServerURL)

	client := gateway.NewClient(cfg.Gateway.ServerURL)
	router := gateway.NewRouter(client)

	logger.Info("ShareIt gateway listening", "address", cfg.GetGatewayAddress())
	if err := http.ListenAndServe(cfg.GetGatewayAddress(), router); err != nil {
		log.Fatalf("Gateway failed: %v", err)
	}
}
