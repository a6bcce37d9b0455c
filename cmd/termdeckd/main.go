package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/termdeck/termdeck/internal/infrastructure/config"
	"github.com/termdeck/termdeck/internal/server"
)

func main() {
	// Parse flags
	port := flag.String("port", "", "Listen port (overrides TERMDECK_PORT)")
	mode := flag.String("mode", "", "Registry mode: desktop or bridge (overrides TERMDECK_REGISTRY_MODE)")
	dev := flag.Bool("dev", false, "Development logging (console encoder, debug level)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *mode != "" {
		cfg.Registry.Mode = *mode
	}
	if *dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Failed to build server: %v", err)
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		if err := srv.Close(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	case err := <-errChan:
		srv.Close()
		log.Fatalf("Server error: %v", err)
	}
}
