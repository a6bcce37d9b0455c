// Package logging provides structured logging using uber/zap.
//
// Two modes, selected by configuration:
//   - Production: JSON output for machine parsing
//   - Development: colored console output for human readability
//
// Components receive a named child logger from the server; domain packages
// do not log, the API layer logs on their behalf.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("daemon starting", zap.String("addr", addr))
//	logger.Error("catalog load failed", zap.Error(err))
package logging
