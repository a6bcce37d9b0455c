/*
Package monitoring provides Prometheus metrics for the launcher daemon.

# Overview

Collectors cover the HTTP surface, catalog loads and degrades, search
latency, launch dispatches, and WebSocket connections. A mutex-guarded
snapshot mirrors the headline numbers for the JSON /stats endpoint.

# Usage

	metrics := monitoring.NewMetrics()

	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	metrics.RecordCatalogLoad(elapsed, len(records))
	metrics.RecordLaunch(err == nil)

	snapshot := metrics.Snapshot() // for /stats
*/
package monitoring
