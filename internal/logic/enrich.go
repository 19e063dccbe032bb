package logic

import (
	"math"

	"github.com/rahulbattula415/NBAShotPrediction/internal/models"
)

// Difficulty labels for the descriptive shot breakdown.
const (
	DifficultyEasy          = "Easy"
	DifficultyModerate      = "Moderate"
	DifficultyDifficult     = "Difficult"
	DifficultyVeryDifficult = "Very Difficult"
)

// comparableSampleSize is the fixed attempt count reported with the
// comparable-shots table.
const comparableSampleSize = 1500

// League-wide field goal percentages by shot type.
const (
	leagueAverage3PT = 0.357
	leagueAverage2PT = 0.545
)

// ShotInfo derives the descriptive, non-learned fields for a prediction.
// The model probability travels with the query so enrichment can key off
// it later; today every field comes from fixed lookup tables on the query.
func ShotInfo(q models.ShotQuery, probability float64) models.ShotInfo {
	label := "2-Pointer"
	if q.ShotType.IsThree() {
		label = "3-Pointer"
	}

	leagueAvg := leagueAverage2PT
	if q.ShotType.IsThree() {
		leagueAvg = leagueAverage3PT
	}

	return models.ShotInfo{
		Distance:        math.Round(q.ShotDistance*10) / 10,
		ShotType:        label,
		Zone:            q.ShotZone,
		Difficulty:      shotDifficulty(q.ShotDistance, q.ShotZone),
		ComparableShots: comparableShots(q.ShotDistance),
		LeagueAverage:   leagueAvg,
	}
}

// shotDifficulty buckets a shot by distance and zone. Conditions evaluate
// top to bottom, first match wins.
func shotDifficulty(distance float64, zone string) string {
	switch {
	case distance <= 3:
		return DifficultyEasy
	case distance <= 10 && (zone == models.ZoneRestrictedArea || zone == models.ZoneInThePaint):
		return DifficultyModerate
	case distance <= 16:
		return DifficultyModerate
	case distance <= 23:
		return DifficultyDifficult
	default:
		return DifficultyVeryDifficult
	}
}

// comparableShots reports league-wide results for the shot's distance band.
func comparableShots(distance float64) models.ComparableShots {
	var rate float64
	switch {
	case distance <= 3:
		rate = 0.68
	case distance <= 10:
		rate = 0.52
	case distance <= 16:
		rate = 0.42
	case distance <= 23:
		rate = 0.38
	default:
		rate = 0.35
	}

	return models.ComparableShots{
		LeagueAvg: rate,
		Attempts:  comparableSampleSize,
		Makes:     int(math.Round(comparableSampleSize * rate)),
	}
}
