package logic

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rahulbattula415/NBAShotPrediction/internal/models"
)

// Prometheus metrics
var (
	predictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shot_predictions_total",
		Help: "Total number of shot predictions served",
	})

	predictionCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shot_prediction_cache_hits_total",
		Help: "Predictions answered from the cache",
	})

	predictionCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shot_prediction_cache_misses_total",
		Help: "Predictions that invoked the classifier",
	})

	predictionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "shot_prediction_duration_seconds",
		Help:    "End-to-end duration of prediction requests",
		Buckets: prometheus.DefBuckets,
	})

	predictionCacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "shot_prediction_cache_size",
		Help: "Current number of entries in the prediction cache",
	})
)

// analyticsTracker owns the process-wide prediction counters. All mutation
// happens under the mutex; Snapshot hands out copies only, so the internal
// maps never escape.
type analyticsTracker struct {
	mu sync.Mutex

	totalPredictions    uint64
	cacheHits           uint64
	cacheMisses         uint64
	averageResponseTime float64
	predictionsByPlayer map[string]uint64
	predictionsByZone   map[string]uint64
}

func newAnalyticsTracker() *analyticsTracker {
	return &analyticsTracker{
		predictionsByPlayer: make(map[string]uint64),
		predictionsByZone:   make(map[string]uint64),
	}
}

// RecordOutcome folds one served prediction into the running counters.
// responseTime is in seconds.
func (t *analyticsTracker) RecordOutcome(query models.ShotQuery, responseTime float64, cacheHit bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalPredictions++
	if cacheHit {
		t.cacheHits++
		predictionCacheHits.Inc()
	} else {
		t.cacheMisses++
		predictionCacheMisses.Inc()
	}

	// Incremental mean: avg' = (avg*(n-1) + x) / n
	n := float64(t.totalPredictions)
	t.averageResponseTime = (t.averageResponseTime*(n-1) + responseTime) / n

	t.predictionsByPlayer[query.PlayerName]++
	t.predictionsByZone[query.ShotZone]++

	predictionsTotal.Inc()
	predictionDuration.Observe(responseTime)
}

// Snapshot returns a defensive copy of the current counters.
func (t *analyticsTracker) Snapshot() models.AnalyticsSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	byPlayer := make(map[string]uint64, len(t.predictionsByPlayer))
	for k, v := range t.predictionsByPlayer {
		byPlayer[k] = v
	}
	byZone := make(map[string]uint64, len(t.predictionsByZone))
	for k, v := range t.predictionsByZone {
		byZone[k] = v
	}

	return models.AnalyticsSnapshot{
		TotalPredictions:    t.totalPredictions,
		CacheHits:           t.cacheHits,
		CacheMisses:         t.cacheMisses,
		AverageResponseTime: t.averageResponseTime,
		PredictionsByPlayer: byPlayer,
		PredictionsByZone:   byZone,
	}
}

// CacheStats combines the hit/miss counters with the current cache size.
func (t *analyticsTracker) CacheStats(size int) models.CacheStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	total := t.cacheHits + t.cacheMisses
	var hitRate float64
	if total > 0 {
		hitRate = float64(t.cacheHits) / float64(total)
	}

	return models.CacheStats{
		CacheSize:     size,
		CacheHits:     t.cacheHits,
		CacheMisses:   t.cacheMisses,
		HitRate:       hitRate,
		TotalRequests: total,
	}
}
