package logic

import (
	"context"

	"github.com/rahulbattula415/NBAShotPrediction/internal/models"
)

// PredictionService scores shots with caching and usage analytics.
type PredictionService interface {
	PredictShot(ctx context.Context, query models.ShotQuery) (models.PredictionResult, error)
	Analytics() models.AnalyticsSnapshot
	CacheStats() models.CacheStats
	ClearCache()
}

// PlayerService serves the NBA player roster.
type PlayerService interface {
	GetPlayerByName(name string) (models.Player, error)
	SearchPlayers(query string) []models.Player
	ListPlayers(page, perPage int) models.PlayersPage
	ShootingStats(name string) (*models.PlayerShootingStats, error)
	Total() int
}
