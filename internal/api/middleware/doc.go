// Package middleware provides HTTP middleware for the launcher API.
//
// Middleware stack includes:
//   - CORS: cross-origin access for the presentation client
//   - RateLimit: per-IP token bucket rate limiting with idle-client cleanup
//   - RequestID: per-request IDs for log correlation
//   - RequestLogger: completion logs with status-driven levels
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.RateLimitConfig{RequestsPerSecond: 50, Burst: 100}))
//	router.Use(middleware.RequestID())
package middleware
