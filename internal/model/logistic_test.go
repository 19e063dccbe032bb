package model

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/rahulbattula415/NBAShotPrediction/internal/models"
)

func testWeights() Weights {
	return Weights{
		Bias: 0.1,
		Coefficients: map[string]float64{
			"loc_x":         0.0,
			"loc_y":         -0.05,
			"shot_distance": -0.6,
			"shot_type":     -0.1,
			"zone_arc":      -0.2,
			"zone_corner":   0.05,
			"zone_mid":      -0.1,
			"zone_paint":    0.3,
		},
		Means: map[string]float64{
			"loc_x": 0, "loc_y": 90, "shot_distance": 13.5, "shot_type": 2.3,
		},
		Scales: map[string]float64{
			"loc_x": 110, "loc_y": 85, "shot_distance": 9.5, "shot_type": 0.46,
		},
	}
}

func testShot(distance float64, zone string, shotType models.FlexShotType) models.ShotQuery {
	return models.ShotQuery{
		LocX:         0,
		LocY:         distance * 10,
		ShotDistance: distance,
		ShotType:     shotType,
		ShotZone:     zone,
		PlayerName:   "LeBron James",
	}
}

func TestLogisticModel_ProbabilityBounds(t *testing.T) {
	m, err := New(testWeights())
	if err != nil {
		t.Fatal(err)
	}

	shots := []models.ShotQuery{
		testShot(1, models.ZoneRestrictedArea, 2),
		testShot(15, models.ZoneMidRange, 2),
		testShot(26, models.ZoneAboveBreak3, 3),
	}
	probs, err := m.PredictProba(context.Background(), shots)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range probs {
		if p <= 0 || p >= 1 {
			t.Errorf("prob[%d] = %v, want strictly inside (0,1)", i, p)
		}
	}
}

func TestLogisticModel_CloserShotsScoreHigher(t *testing.T) {
	m, err := New(testWeights())
	if err != nil {
		t.Fatal(err)
	}

	probs, err := m.PredictProba(context.Background(), []models.ShotQuery{
		testShot(2, models.ZoneRestrictedArea, 2),
		testShot(27, models.ZoneAboveBreak3, 3),
	})
	if err != nil {
		t.Fatal(err)
	}
	if probs[0] <= probs[1] {
		t.Errorf("layup prob %v should exceed deep three prob %v", probs[0], probs[1])
	}
}

func TestLogisticModel_PredictMatchesProba(t *testing.T) {
	m, err := New(testWeights())
	if err != nil {
		t.Fatal(err)
	}

	batch := []models.ShotQuery{
		testShot(2, models.ZoneRestrictedArea, 2),
		testShot(27, models.ZoneAboveBreak3, 3),
	}
	labels, err := m.Predict(context.Background(), batch)
	if err != nil {
		t.Fatal(err)
	}
	probs, err := m.PredictProba(context.Background(), batch)
	if err != nil {
		t.Fatal(err)
	}
	for i := range batch {
		if labels[i] != (probs[i] >= 0.5) {
			t.Errorf("label[%d] = %v inconsistent with prob %v", i, labels[i], probs[i])
		}
	}
}

func TestNew_MissingCoefficient(t *testing.T) {
	w := testWeights()
	delete(w.Coefficients, "shot_distance")

	if _, err := New(w); err == nil {
		t.Error("New accepted weights missing a coefficient")
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot_model.json")
	data := `{
		"bias": 0.1,
		"coefficients": {
			"loc_x": 0, "loc_y": -0.05, "shot_distance": -0.6, "shot_type": -0.1,
			"zone_arc": -0.2, "zone_corner": 0.05, "zone_mid": -0.1, "zone_paint": 0.3
		},
		"means": {"shot_distance": 13.5},
		"scales": {"shot_distance": 9.5}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := m.PredictProba(context.Background(), []models.ShotQuery{testShot(10, models.ZoneMidRange, 2)}); err != nil {
		t.Errorf("PredictProba failed: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestProvider_LazyLoadAndReuse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot_model.json")
	provider := Provider(path, zap.NewNop())

	// No weights yet: every call errors, nothing is cached.
	if _, err := provider(); err == nil {
		t.Fatal("provider succeeded without a weights file")
	}

	data := `{
		"bias": 0,
		"coefficients": {
			"loc_x": 0, "loc_y": 0, "shot_distance": -0.6, "shot_type": 0,
			"zone_arc": 0, "zone_corner": 0, "zone_mid": 0, "zone_paint": 0
		}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	first, err := provider()
	if err != nil {
		t.Fatalf("provider failed after weights appeared: %v", err)
	}
	second, err := provider()
	if err != nil {
		t.Fatalf("provider failed on reuse: %v", err)
	}
	if first != second {
		t.Error("provider reloaded the model instead of reusing it")
	}
}

func TestProject_ZoneGrouping(t *testing.T) {
	tests := []struct {
		zone string
		want string
	}{
		{models.ZoneRestrictedArea, "zone_paint"},
		{models.ZoneInThePaint, "zone_paint"},
		{models.ZoneMidRange, "zone_mid"},
		{models.ZoneLeftCorner3, "zone_corner"},
		{models.ZoneRightCorner3, "zone_corner"},
		{models.ZoneAboveBreak3, "zone_arc"},
	}

	for _, tt := range tests {
		features := project(testShot(10, tt.zone, 2))
		if features[tt.want] != 1 {
			t.Errorf("zone %q: feature %s = %v, want 1", tt.zone, tt.want, features[tt.want])
		}
		for _, col := range []string{"zone_arc", "zone_corner", "zone_mid", "zone_paint"} {
			if col != tt.want && features[col] != 0 {
				t.Errorf("zone %q: feature %s = %v, want 0", tt.zone, col, features[col])
			}
		}
	}
}
