// Package api exposes the request/response boundary of the relay: session
// creation and lookup for the editor UI, a liveness probe for monitoring,
// and the websocket mount point. It never touches session state except
// through the SessionDirectory interface.
package api
