package logic

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math"

	"github.com/rahulbattula415/NBAShotPrediction/internal/models"
)

// fingerprintRecord is the canonical form hashed into a cache key. Fields are
// declared in lexicographic key order so the serialized bytes are stable.
type fingerprintRecord struct {
	LocX         float64 `json:"loc_x"`
	LocY         float64 `json:"loc_y"`
	PlayerName   string  `json:"player_name"`
	ShotDistance float64 `json:"shot_distance"`
	ShotType     string  `json:"shot_type"`
	ShotZone     string  `json:"shot_zone_basic"`
}

// Fingerprint derives the deterministic cache key for a shot query. Floats
// are rounded to 2 decimal places first, so queries that differ only beyond
// that precision share a key; this buckets near-identical shots on purpose.
func Fingerprint(q models.ShotQuery) string {
	rec := fingerprintRecord{
		LocX:         round2(q.LocX),
		LocY:         round2(q.LocY),
		PlayerName:   q.PlayerName,
		ShotDistance: round2(q.ShotDistance),
		ShotType:     q.ShotType.String(),
		ShotZone:     q.ShotZone,
	}

	// Marshal of a flat struct with no map fields cannot fail.
	data, _ := json.Marshal(rec)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
