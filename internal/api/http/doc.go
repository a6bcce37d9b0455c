// Package http implements the daemon's REST surface on gin.
//
// Handlers hold no domain state of their own: they validate input, call the
// owning component, and map its errors onto JSON problem bodies. Status
// mapping is uniform across the surface:
//
//   - 400 invalid input (malformed JSON, failed validation, past deadlines)
//   - 404 unknown identity or reminder
//   - 409 dock capacity exceeded
//   - 502 launch dispatch or bridge failure
//
// View reads never block behind loads; they return whatever snapshot the
// composer currently publishes.
package http
