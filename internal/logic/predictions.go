package logic

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rahulbattula415/NBAShotPrediction/internal/models"
)

// PredictionConfig wires the prediction service.
type PredictionConfig struct {
	Classifier ClassifierProvider
	Players    PlayerService // optional; predictions work without a roster
	Timeout    time.Duration
	Capacity   int
	Logger     *zap.Logger
}

type predictionService struct {
	gateway   *inferenceGateway
	cache     *resultCache
	analytics *analyticsTracker
	players   PlayerService
	logger    *zap.SugaredLogger
}

func NewPredictionService(cfg PredictionConfig) PredictionService {
	return &predictionService{
		gateway:   newInferenceGateway(cfg.Classifier, cfg.Timeout),
		cache:     newResultCache(cfg.Capacity),
		analytics: newAnalyticsTracker(),
		players:   cfg.Players,
		logger:    cfg.Logger.Sugar(),
	}
}

// PredictShot scores a single shot. Identical queries (after rounding the
// floats to 2 decimals) hit the cache and never reach the classifier. On any
// inference failure nothing is cached and no analytics are recorded.
func (s *predictionService) PredictShot(ctx context.Context, query models.ShotQuery) (models.PredictionResult, error) {
	start := time.Now()
	fingerprint := Fingerprint(query)

	if cached, ok := s.cache.Lookup(fingerprint); ok {
		s.analytics.RecordOutcome(query, time.Since(start).Seconds(), true)
		s.logger.Infow("Cache hit for prediction", "fingerprint", fingerprint)
		return cached, nil
	}

	made, probability, err := s.gateway.Infer(ctx, query)
	if err != nil {
		s.logger.Errorw("Prediction failed", "error", err, "player", query.PlayerName)
		return models.PredictionResult{}, err
	}

	result := models.PredictionResult{
		ShotMade:    made,
		Probability: probability,
		Confidence:  ConfidenceLevel(probability),
		ShotInfo:    ShotInfo(query, probability),
		PlayerStats: s.playerStats(query.PlayerName),
	}

	s.cache.Insert(fingerprint, result)
	predictionCacheSize.Set(float64(s.cache.Size()))

	responseTime := time.Since(start).Seconds()
	s.analytics.RecordOutcome(query, responseTime, false)

	s.logger.Infow("Prediction completed",
		"player", query.PlayerName,
		"probability", probability,
		"responseTime", responseTime,
	)

	return result, nil
}

// playerStats fetches shooting splits for the player. A missing roster or an
// unknown player just omits the block; it never fails the prediction.
func (s *predictionService) playerStats(name string) *models.PlayerShootingStats {
	if s.players == nil {
		return nil
	}
	stats, err := s.players.ShootingStats(name)
	if err != nil {
		return nil
	}
	return stats
}

func (s *predictionService) Analytics() models.AnalyticsSnapshot {
	return s.analytics.Snapshot()
}

func (s *predictionService) CacheStats() models.CacheStats {
	return s.analytics.CacheStats(s.cache.Size())
}

func (s *predictionService) ClearCache() {
	s.cache.Clear()
	predictionCacheSize.Set(0)
	s.logger.Info("Prediction cache cleared")
}
