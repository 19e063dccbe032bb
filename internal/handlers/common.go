package handlers

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// requestCounters tracks process-wide request outcomes for the analytics
// endpoint.
type requestCounters struct {
	total      atomic.Uint64
	successful atomic.Uint64
	failed     atomic.Uint64
}

// statusRecorder captures the response status for logging and counting.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestMiddleware assigns a request ID, logs each request, and tracks
// success/failure counts.
func (h *Handler) RequestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		h.requests.total.Add(1)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if rec.status < http.StatusInternalServerError {
			h.requests.successful.Add(1)
		} else {
			h.requests.failed.Add(1)
		}

		h.logger.Infow("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"requestID", requestID,
		)
	})
}

// Root describes the API for callers probing the base URL.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"message": "NBA Shot Predictor API",
		"version": APIVersion,
		"status":  "ready",
	})
}

// Health check endpoint. Degraded when the model cannot be obtained.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	_, err := h.model()
	status := "healthy"
	if err != nil {
		status = "degraded"
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":         status,
		"timestamp":      time.Now().UTC(),
		"model_loaded":   err == nil,
		"uptime_seconds": time.Since(h.startTime).Seconds(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"ready":   true,
		"players": h.players.Total(),
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}
