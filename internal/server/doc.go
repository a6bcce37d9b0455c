// Package server assembles the daemon from its components.
//
// This package orchestrates:
//   - HTTP routing with the Gin framework
//   - Middleware stack (request IDs, CORS, rate limiting, metrics, recovery)
//   - Catalog provider selection (desktop scan or platform bridge)
//   - Drawer composition, usage tracking, dock and reminder managers
//   - WebSocket event fan-out
//
// Server Lifecycle:
//  1. Load configuration from the environment
//  2. Initialize the logger
//  3. Build the catalog provider for the configured mode
//  4. Warm-start the drawer from the cached snapshot, then reload live
//  5. Setup HTTP routes and middleware
//  6. Start the HTTP server
//  7. Graceful shutdown on signal
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer srv.Close()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
