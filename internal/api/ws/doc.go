// Package ws provides the WebSocket event stream for launcher clients.
//
// The hub fans typed events out to every connected client; clients may
// narrow delivery with a subscribe message. Delivery is best-effort: slow
// clients lose events rather than stall the hub, and the shell re-fetches
// state on reconnect.
//
// Message Types (Client → Server):
//   - ping: keep-alive, answered with pong
//   - subscribe: replace the client's topic filter
//
// Message Types (Server → Client):
//   - system: connection welcome with the client ID
//   - pong: ping reply
//   - drawer.update: composed drawer state changed
//   - usage.update: launch history changed
//   - dock.update: dock pins or widgets changed
//   - reminder.fired: a reminder deadline passed
//   - pomodoro.phase: the Pomodoro timer changed phase
//
// Example Usage:
//
//	hub := ws.NewHub().WithMetrics(metrics)
//	go hub.Run()
//	handler := ws.NewHandler(hub, logger)
//	router.GET("/stream", handler.HandleConnection)
package ws
