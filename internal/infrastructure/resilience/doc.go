/*
Package resilience provides a circuit breaker for calls to the platform
bridge.

# Overview

The breaker keeps a flaky or absent bridge from stalling every catalog load
and launch dispatch. Calls flow through Do; once consecutive failures reach
the configured threshold the breaker opens and fails fast, then probes the
bridge again after a cooldown.

# Usage

	breaker := resilience.NewBreaker("bridge", resilience.Config{
		FailureThreshold: 5,
		Timeout:          30 * time.Second,
	})

	err := breaker.Do(func() error {
		return client.Fetch()
	})

# States

	Closed --[failures]-> Open --[timeout]-> Half-Open --[successes]-> Closed
	                                              |
	                                         [failure]
	                                              v
	                                            Open

Closed passes requests through and counts outcomes. Open rejects immediately
with ErrCircuitOpen. Half-Open admits a bounded number of probe requests;
success closes the breaker, failure reopens it.
*/
package resilience
