package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"
)

// Config
const (
	API_URL    = "http://localhost:8080/predict"
	SHOT_COUNT = 25
)

// Shot matches the models.ShotQuery wire format.
type Shot struct {
	LocX         float64 `json:"loc_x"`
	LocY         float64 `json:"loc_y"`
	ShotDistance float64 `json:"shot_distance"`
	ShotType     int     `json:"shot_type"`
	ShotZone     string  `json:"shot_zone_basic"`
	PlayerName   string  `json:"player_name"`
}

var zones2pt = []string{"Restricted Area", "In The Paint (Non-RA)", "Mid-Range"}
var zones3pt = []string{"Left Corner 3", "Right Corner 3", "Above the Break 3"}

var players = []string{
	"LeBron James", "Stephen Curry", "Kevin Durant",
	"Jayson Tatum", "Luka Doncic", "Giannis Antetokounmpo",
}

func randomShot(rng *rand.Rand) Shot {
	if rng.Intn(2) == 0 {
		dist := rng.Float64() * 21
		return Shot{
			LocX:         rng.Float64()*200 - 100,
			LocY:         dist * 8,
			ShotDistance: dist,
			ShotType:     2,
			ShotZone:     zones2pt[rng.Intn(len(zones2pt))],
			PlayerName:   players[rng.Intn(len(players))],
		}
	}
	dist := 22 + rng.Float64()*10
	return Shot{
		LocX:         rng.Float64()*400 - 200,
		LocY:         dist * 8,
		ShotDistance: dist,
		ShotType:     3,
		ShotZone:     zones3pt[rng.Intn(len(zones3pt))],
		PlayerName:   players[rng.Intn(len(players))],
	}
}

func main() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	client := &http.Client{Timeout: 10 * time.Second}

	for i := 0; i < SHOT_COUNT; i++ {
		shot := randomShot(rng)
		payload, err := json.Marshal(shot)
		if err != nil {
			log.Fatalf("marshal shot: %v", err)
		}

		resp, err := client.Post(API_URL, "application/json", bytes.NewReader(payload))
		if err != nil {
			log.Fatalf("POST %s: %v", API_URL, err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		fmt.Printf("[%d/%d] %s from %.1fft (%s) -> %d %s\n",
			i+1, SHOT_COUNT, shot.PlayerName, shot.ShotDistance, shot.ShotZone,
			resp.StatusCode, string(body))
	}
}
