package models

// Shot zone labels used by the NBA shot chart data.
const (
	ZoneRestrictedArea = "Restricted Area"
	ZoneInThePaint     = "In The Paint (Non-RA)"
	ZoneMidRange       = "Mid-Range"
	ZoneLeftCorner3    = "Left Corner 3"
	ZoneRightCorner3   = "Right Corner 3"
	ZoneAboveBreak3    = "Above the Break 3"
)

// ShotZones lists every accepted shot zone label.
var ShotZones = []string{
	ZoneRestrictedArea,
	ZoneInThePaint,
	ZoneMidRange,
	ZoneLeftCorner3,
	ZoneRightCorner3,
	ZoneAboveBreak3,
}

// ShotQuery is a single shot to score. Coordinates use the NBA shot chart
// scale (x negative=left, y distance from baseline). ShotType accepts 2/3 or
// the "2PT Field Goal"/"3PT Field Goal" labels; FlexShotType normalizes both.
type ShotQuery struct {
	LocX         float64      `json:"loc_x" validate:"gte=-300,lte=300"`
	LocY         float64      `json:"loc_y" validate:"gte=0,lte=500"`
	ShotDistance float64      `json:"shot_distance" validate:"gte=0,lte=50"`
	ShotType     FlexShotType `json:"shot_type"`
	ShotZone     string       `json:"shot_zone_basic" validate:"required"`
	PlayerName   string       `json:"player_name" validate:"required,min=1,max=100"`
}

// PredictionResult is the enriched outcome of a single prediction. Results
// are stored by value in the cache, so a cache hit returns an identical copy.
type PredictionResult struct {
	ShotMade    bool                 `json:"shot_made"`
	Probability float64              `json:"probability"`
	Confidence  string               `json:"confidence"`
	ShotInfo    ShotInfo             `json:"shot_info"`
	PlayerStats *PlayerShootingStats `json:"player_stats,omitempty"`
}

// ShotInfo carries descriptive fields derived from the query, not the model.
type ShotInfo struct {
	Distance        float64         `json:"distance"`
	ShotType        string          `json:"shot_type"`
	Zone            string          `json:"zone"`
	Difficulty      string          `json:"difficulty"`
	ComparableShots ComparableShots `json:"comparable_shots"`
	LeagueAverage   float64         `json:"league_average"`
}

// ComparableShots summarizes league-wide results for shots from the same
// distance band.
type ComparableShots struct {
	LeagueAvg float64 `json:"league_avg"`
	Attempts  int     `json:"attempts"`
	Makes     int     `json:"makes"`
}

// PlayerShootingStats holds season shooting splits for a rostered player.
type PlayerShootingStats struct {
	FGPercentage         float64 `json:"fg_percentage"`
	ThreePointPercentage float64 `json:"three_point_percentage"`
	FreeThrowPercentage  float64 `json:"free_throw_percentage"`
	EffectiveFGPct       float64 `json:"effective_fg_percentage"`
	TrueShootingPct      float64 `json:"true_shooting_percentage"`
	GamesPlayed          int     `json:"games_played"`
	MinutesPerGame       float64 `json:"minutes_per_game"`
	FieldGoalsMade       float64 `json:"field_goals_made"`
	FieldGoalsAttempted  float64 `json:"field_goals_attempted"`
}

// Player is a roster entry.
type Player struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Team         string `json:"team,omitempty"`
	Position     string `json:"position,omitempty"`
	JerseyNumber int    `json:"jersey_number,omitempty"`
	Height       string `json:"height,omitempty"`
	Weight       int    `json:"weight,omitempty"`
	YearsPro     int    `json:"years_pro,omitempty"`
}

// PlayersPage is the paginated roster listing response.
type PlayersPage struct {
	Players []Player `json:"players"`
	Total   int      `json:"total"`
	Page    int      `json:"page"`
	PerPage int      `json:"per_page"`
}
