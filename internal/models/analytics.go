package models

// AnalyticsSnapshot is a point-in-time copy of the prediction analytics
// counters. The maps are copies; mutating a snapshot never touches the
// tracker's internal state.
type AnalyticsSnapshot struct {
	TotalPredictions    uint64            `json:"total_predictions"`
	CacheHits           uint64            `json:"cache_hits"`
	CacheMisses         uint64            `json:"cache_misses"`
	AverageResponseTime float64           `json:"average_response_time"`
	PredictionsByPlayer map[string]uint64 `json:"predictions_by_player"`
	PredictionsByZone   map[string]uint64 `json:"predictions_by_zone"`
}

// CacheStats summarizes prediction cache effectiveness.
type CacheStats struct {
	CacheSize     int     `json:"cache_size"`
	CacheHits     uint64  `json:"cache_hits"`
	CacheMisses   uint64  `json:"cache_misses"`
	HitRate       float64 `json:"hit_rate"`
	TotalRequests uint64  `json:"total_requests"`
}
