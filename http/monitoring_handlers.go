package http

import (
	"net/http"

	"edupredict/monitoring"
)

var hub *monitoring.Hub

// SetHub injects the websocket hub; nil disables the live stream.
func SetHub(h *monitoring.Hub) {
	hub = h
}

func RegisterMonitoringHandlers(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/metrics", handleMetrics)
	mux.HandleFunc("GET /api/ws/metrics", handleMetricsWS)
}

func handleMetrics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, stats.Snapshot())
}

func handleMetricsWS(w http.ResponseWriter, r *http.Request) {
	if hub == nil {
		respondError(w, "metrics stream not available", http.StatusServiceUnavailable)
		return
	}
	hub.ServeWS(w, r)
}
