// Package bridge is the HTTP client for the platform bridge.
//
// On platforms where applications are not discoverable from the filesystem,
// a bridge process exposes the installed-app registry, usage history, and
// launch capability over a small JSON API. This client wraps that API with a
// retrying transport and a circuit breaker so a flaky bridge degrades the
// catalog instead of stalling it.
//
// The client implements the registry, usage source, and launch dispatcher
// contracts consumed by the catalog loader and the API layer.
package bridge
