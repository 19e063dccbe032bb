package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rahulbattula415/NBAShotPrediction/internal/logic"
	"github.com/rahulbattula415/NBAShotPrediction/internal/models"
)

// PredictShot scores a single shot attempt
// @Summary Predict shot outcome
// @Tags Predictions
// @Accept json
// @Produce json
// @Param shot body models.ShotQuery true "Shot to score"
// @Success 200 {object} models.PredictionResult
// @Failure 422 {object} map[string]string "Validation failed"
// @Failure 503 {object} map[string]string "Model unavailable or timed out"
// @Router /predict [post]
func (h *Handler) PredictShot(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var query models.ShotQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		h.errorResponse(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}

	if msg := h.validateQuery(query); msg != "" {
		h.errorResponse(w, http.StatusUnprocessableEntity, msg)
		return
	}

	h.logger.Infow("Prediction request",
		"player", query.PlayerName,
		"locX", query.LocX,
		"locY", query.LocY,
	)

	result, err := h.prediction.PredictShot(r.Context(), query)
	if err != nil {
		h.logger.Errorw("Prediction failed", "error", err, "player", query.PlayerName)
		switch {
		case errors.Is(err, logic.ErrModelTimeout), errors.Is(err, logic.ErrModelUnavailable):
			h.errorResponse(w, http.StatusServiceUnavailable, err.Error())
		default:
			h.errorResponse(w, http.StatusServiceUnavailable, "Prediction failed")
		}
		return
	}

	h.jsonResponse(w, http.StatusOK, result)
}

// validateQuery applies the boundary input contract. Returns an empty string
// when the query is valid.
func (h *Handler) validateQuery(query models.ShotQuery) string {
	if !query.ShotType.Valid() {
		return "shot_type must be 2 or 3"
	}
	if !validZone(query.ShotZone) {
		return "shot_zone_basic must be one of the six shot chart zones"
	}
	if err := h.validator.Struct(query); err != nil {
		return "Request validation failed: " + err.Error()
	}
	return ""
}

func validZone(zone string) bool {
	for _, z := range models.ShotZones {
		if zone == z {
			return true
		}
	}
	return false
}

// Analytics returns prediction analytics, cache stats, and system counters
// @Summary Get prediction analytics
// @Tags Analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /analytics [get]
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"system": map[string]interface{}{
			"uptime_seconds":      time.Since(h.startTime).Seconds(),
			"total_requests":      h.requests.total.Load(),
			"successful_requests": h.requests.successful.Load(),
			"failed_requests":     h.requests.failed.Load(),
		},
		"predictions": h.prediction.Analytics(),
		"cache":       h.prediction.CacheStats(),
	})
}

// CacheStats returns prediction cache statistics
// @Summary Get cache stats
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.CacheStats
// @Router /cache/stats [get]
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.prediction.CacheStats())
}

// ClearCache empties the prediction cache
// @Summary Clear prediction cache
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]string
// @Router /cache/clear [post]
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	h.prediction.ClearCache()
	h.jsonResponse(w, http.StatusOK, map[string]string{"message": "Cache cleared successfully"})
}
