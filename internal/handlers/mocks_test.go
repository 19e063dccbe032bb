package handlers

import (
	"context"

	"github.com/rahulbattula415/NBAShotPrediction/internal/logic"
	"github.com/rahulbattula415/NBAShotPrediction/internal/models"
)

// MockPredictionService implements logic.PredictionService for testing
type MockPredictionService struct {
	PredictShotFunc func(ctx context.Context, query models.ShotQuery) (models.PredictionResult, error)
	AnalyticsFunc   func() models.AnalyticsSnapshot
	CacheStatsFunc  func() models.CacheStats
	ClearCacheCalls int
}

func (m *MockPredictionService) PredictShot(ctx context.Context, query models.ShotQuery) (models.PredictionResult, error) {
	if m.PredictShotFunc != nil {
		return m.PredictShotFunc(ctx, query)
	}
	return models.PredictionResult{ShotMade: true, Probability: 0.62, Confidence: "Medium"}, nil
}

func (m *MockPredictionService) Analytics() models.AnalyticsSnapshot {
	if m.AnalyticsFunc != nil {
		return m.AnalyticsFunc()
	}
	return models.AnalyticsSnapshot{}
}

func (m *MockPredictionService) CacheStats() models.CacheStats {
	if m.CacheStatsFunc != nil {
		return m.CacheStatsFunc()
	}
	return models.CacheStats{}
}

func (m *MockPredictionService) ClearCache() {
	m.ClearCacheCalls++
}

// MockPlayerService implements logic.PlayerService for testing
type MockPlayerService struct {
	GetPlayerByNameFunc func(name string) (models.Player, error)
	SearchPlayersFunc   func(query string) []models.Player
	ListPlayersFunc     func(page, perPage int) models.PlayersPage
}

func (m *MockPlayerService) GetPlayerByName(name string) (models.Player, error) {
	if m.GetPlayerByNameFunc != nil {
		return m.GetPlayerByNameFunc(name)
	}
	return models.Player{ID: 1, Name: name}, nil
}

func (m *MockPlayerService) SearchPlayers(query string) []models.Player {
	if m.SearchPlayersFunc != nil {
		return m.SearchPlayersFunc(query)
	}
	return nil
}

func (m *MockPlayerService) ListPlayers(page, perPage int) models.PlayersPage {
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc(page, perPage)
	}
	return models.PlayersPage{Page: page, PerPage: perPage}
}

func (m *MockPlayerService) ShootingStats(name string) (*models.PlayerShootingStats, error) {
	return nil, logic.ErrPlayerNotFound
}

func (m *MockPlayerService) Total() int { return 0 }

// loadedModel is a ClassifierProvider that always succeeds.
func loadedModel() (logic.Classifier, error) {
	return &MockHandlerClassifier{}, nil
}

// MockHandlerClassifier is a trivial Classifier for provider checks.
type MockHandlerClassifier struct{}

func (m *MockHandlerClassifier) Predict(ctx context.Context, batch []models.ShotQuery) ([]bool, error) {
	return make([]bool, len(batch)), nil
}

func (m *MockHandlerClassifier) PredictProba(ctx context.Context, batch []models.ShotQuery) ([]float64, error) {
	return make([]float64, len(batch)), nil
}
