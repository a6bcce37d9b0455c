// Package providers groups the platform-facing adapters the daemon composes
// its catalog and launch pipeline from.
//
// Each subpackage owns one integration surface:
//   - desktopfiles: scans XDG application directories for .desktop entries
//   - icons: resolves and serves icon files with sniffed content types
//   - launch: spawns applications from their Exec lines
//   - bridge: talks to a platform registry service over HTTP with retries
//     and a circuit breaker
//
// The catalog loader accepts any Registry implementation, so desktop scanning
// and the bridge client are interchangeable sources selected by configuration.
package providers
