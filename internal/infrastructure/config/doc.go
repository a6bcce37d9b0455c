// Package config provides 12-factor configuration for the launcher daemon.
//
// Configuration is loaded from TERMDECK_* environment variables with
// sensible defaults for a local desktop install.
//
// Configuration Sections:
//   - Server: HTTP bind settings
//   - Registry: catalog source selection (desktop scan or platform bridge)
//   - Bridge: bridge client transport and circuit breaker tuning
//   - State: persistent state directory (dock, snapshot cache)
//   - Classifier: optional category rule file
//   - Icons: icon lookup directories
//   - Logging: level and output format
//   - RateLimit: per-IP API rate limiting
//   - Pomodoro: default phase durations
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("listening on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// Environment Variables:
//   - TERMDECK_PORT, TERMDECK_HOST
//   - TERMDECK_REGISTRY_MODE, TERMDECK_DESKTOP_DIRS, TERMDECK_SELF_IDENTITY
//   - TERMDECK_BRIDGE_URL, TERMDECK_BRIDGE_TIMEOUT, TERMDECK_BRIDGE_RETRIES
//   - TERMDECK_STATE_DIR, TERMDECK_CLASSIFIER_RULES, TERMDECK_ICON_DIRS
//   - TERMDECK_LOG_LEVEL, TERMDECK_LOG_DEV
//   - TERMDECK_RATE_LIMIT_RPS, TERMDECK_RATE_LIMIT_BURST
//   - TERMDECK_POMODORO_WORK, TERMDECK_POMODORO_BREAK
package config
