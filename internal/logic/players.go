package logic

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/rahulbattula415/NBAShotPrediction/internal/models"
)

// playerService serves the NBA roster. The roster loads from a JSON file
// when one is configured and present, otherwise from the built-in fallback
// list. Reload swaps the whole roster under the mutex.
type playerService struct {
	mu      sync.RWMutex
	players []models.Player
	byName  map[string]models.Player
	path    string
	logger  *zap.SugaredLogger
}

func NewPlayerService(path string, logger *zap.Logger) PlayerService {
	s := &playerService{
		path:   path,
		logger: logger.Sugar(),
	}
	s.load()
	return s
}

func (s *playerService) load() {
	players, err := s.loadFromFile()
	if err != nil {
		if s.path != "" {
			s.logger.Warnw("Falling back to built-in roster", "error", err, "path", s.path)
		}
		players = fallbackPlayers()
	}

	byName := make(map[string]models.Player, len(players))
	for _, p := range players {
		byName[p.Name] = p
	}

	s.mu.Lock()
	s.players = players
	s.byName = byName
	s.mu.Unlock()

	s.logger.Infow("Loaded players", "count", len(players))
}

func (s *playerService) loadFromFile() ([]models.Player, error) {
	if s.path == "" {
		return nil, fmt.Errorf("no players file configured")
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read players file: %w", err)
	}
	var players []models.Player
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, fmt.Errorf("parse players file: %w", err)
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("players file is empty")
	}
	return players, nil
}

func (s *playerService) GetPlayerByName(name string) (models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byName[name]
	if !ok {
		return models.Player{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, name)
	}
	return p, nil
}

func (s *playerService) SearchPlayers(query string) []models.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var matches []models.Player
	for _, p := range s.players {
		if strings.Contains(strings.ToLower(p.Name), q) {
			matches = append(matches, p)
		}
	}
	return matches
}

func (s *playerService) ListPlayers(page, perPage int) models.PlayersPage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 50
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(s.players) {
		start = len(s.players)
	}
	if end > len(s.players) {
		end = len(s.players)
	}

	return models.PlayersPage{
		Players: s.players[start:end],
		Total:   len(s.players),
		Page:    page,
		PerPage: perPage,
	}
}

// ShootingStats returns season shooting splits for a rostered player. The
// splits are static placeholder numbers until a stats source is wired in.
func (s *playerService) ShootingStats(name string) (*models.PlayerShootingStats, error) {
	if _, err := s.GetPlayerByName(name); err != nil {
		return nil, err
	}
	return &models.PlayerShootingStats{
		FGPercentage:         0.475,
		ThreePointPercentage: 0.367,
		FreeThrowPercentage:  0.832,
		EffectiveFGPct:       0.545,
		TrueShootingPct:      0.588,
		GamesPlayed:          65,
		MinutesPerGame:       35.2,
		FieldGoalsMade:       8.5,
		FieldGoalsAttempted:  17.8,
	}, nil
}

func (s *playerService) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}

func fallbackPlayers() []models.Player {
	return []models.Player{
		{ID: 1, Name: "LeBron James", Team: "Los Angeles Lakers", Position: "SF", JerseyNumber: 6, Height: `6'9"`, Weight: 250, YearsPro: 21},
		{ID: 2, Name: "Stephen Curry", Team: "Golden State Warriors", Position: "PG", JerseyNumber: 30, Height: `6'2"`, Weight: 185, YearsPro: 15},
		{ID: 3, Name: "Kevin Durant", Team: "Phoenix Suns", Position: "SF", JerseyNumber: 35, Height: `6'10"`, Weight: 240, YearsPro: 17},
		{ID: 4, Name: "Jayson Tatum", Team: "Boston Celtics", Position: "SF", JerseyNumber: 0, Height: `6'8"`, Weight: 210, YearsPro: 7},
		{ID: 5, Name: "Luka Doncic", Team: "Dallas Mavericks", Position: "PG", JerseyNumber: 77, Height: `6'7"`, Weight: 230, YearsPro: 6},
		{ID: 6, Name: "Klay Thompson", Team: "Golden State Warriors", Position: "SG", JerseyNumber: 11, Height: `6'6"`, Weight: 215, YearsPro: 13},
		{ID: 7, Name: "Joel Embiid", Team: "Philadelphia 76ers", Position: "C", JerseyNumber: 21, Height: `7'0"`, Weight: 280, YearsPro: 8},
		{ID: 8, Name: "Giannis Antetokounmpo", Team: "Milwaukee Bucks", Position: "PF", JerseyNumber: 34, Height: `6'11"`, Weight: 243, YearsPro: 11},
		{ID: 9, Name: "Damian Lillard", Team: "Milwaukee Bucks", Position: "PG", JerseyNumber: 0, Height: `6'2"`, Weight: 195, YearsPro: 12},
		{ID: 10, Name: "Ja Morant", Team: "Memphis Grizzlies", Position: "PG", JerseyNumber: 12, Height: `6'3"`, Weight: 174, YearsPro: 5},
		{ID: 11, Name: "Jimmy Butler", Team: "Miami Heat", Position: "SF", JerseyNumber: 22, Height: `6'7"`, Weight: 230, YearsPro: 13},
		{ID: 12, Name: "Kawhi Leonard", Team: "LA Clippers", Position: "SF", JerseyNumber: 2, Height: `6'7"`, Weight: 225, YearsPro: 13},
	}
}
