// Package main is the entry point for the termdeck launcher daemon.
//
// The daemon owns the app-drawer state for the presentation shell: it scans
// the platform's application catalog, classifies and ranks entries, tracks
// session usage, and persists the pinned dock. Clients read views over REST
// and subscribe to change events over WebSocket.
//
// Architecture:
//
//	Shell (terminal UI) → termdeckd → .desktop entries (desktop mode)
//	                               → platform bridge HTTP API (bridge mode)
//
// Configuration:
//   - Environment variables (TERMDECK_*, 12-factor)
//   - CLI flags (override env vars)
//   - Defaults for local development
//
// Usage:
//
//	# Desktop mode on the default port
//	./termdeckd
//
//	# Bridge mode against a platform service
//	TERMDECK_BRIDGE_URL=http://127.0.0.1:7420 ./termdeckd -mode bridge
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
