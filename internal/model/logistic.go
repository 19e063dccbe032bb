// Package model implements the trained shot classifier: a logistic
// regression over scaled shot features, with the same input projection the
// training pipeline used. Weights are exported by the training scripts as
// JSON and loaded lazily on first prediction.
package model

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/rahulbattula415/NBAShotPrediction/internal/models"
)

// Zone grouping mirrored from the training pipeline. Unknown zones pass
// through unchanged so the one-hot encoding simply leaves them unset.
var zoneGroups = map[string]string{
	models.ZoneMidRange:       "Mid",
	models.ZoneLeftCorner3:    "Corner",
	models.ZoneRightCorner3:   "Corner",
	models.ZoneAboveBreak3:    "Arc",
	models.ZoneRestrictedArea: "Paint",
	models.ZoneInThePaint:     "Paint",
}

// featureOrder fixes the coefficient vector layout: scaled numerics first,
// then the one-hot zone group columns.
var featureOrder = []string{
	"loc_x", "loc_y", "shot_distance", "shot_type",
	"zone_arc", "zone_corner", "zone_mid", "zone_paint",
}

// Weights is the on-disk model format produced by the training scripts.
// Means and scales apply standard scaling to the numeric features before the
// dot product; one-hot columns are not scaled.
type Weights struct {
	Bias         float64            `json:"bias"`
	Coefficients map[string]float64 `json:"coefficients"`
	Means        map[string]float64 `json:"means"`
	Scales       map[string]float64 `json:"scales"`
}

// LogisticModel scores shots with a fitted logistic regression.
type LogisticModel struct {
	weights Weights
}

// Load reads model weights from a JSON file.
func Load(path string) (*LogisticModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load model weights: %w", err)
	}
	var w Weights
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parse model weights: %w", err)
	}
	return New(w)
}

// New builds a model from already-parsed weights.
func New(w Weights) (*LogisticModel, error) {
	for _, name := range featureOrder {
		if _, ok := w.Coefficients[name]; !ok {
			return nil, fmt.Errorf("model weights missing coefficient %q", name)
		}
	}
	return &LogisticModel{weights: w}, nil
}

// Predict returns the made/missed label for each shot in the batch.
func (m *LogisticModel) Predict(ctx context.Context, batch []models.ShotQuery) ([]bool, error) {
	probs, err := m.PredictProba(ctx, batch)
	if err != nil {
		return nil, err
	}
	labels := make([]bool, len(probs))
	for i, p := range probs {
		labels[i] = p >= 0.5
	}
	return labels, nil
}

// PredictProba returns P(made) for each shot in the batch.
func (m *LogisticModel) PredictProba(ctx context.Context, batch []models.ShotQuery) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	probs := make([]float64, len(batch))
	for i, q := range batch {
		probs[i] = m.score(q)
	}
	return probs, nil
}

func (m *LogisticModel) score(q models.ShotQuery) float64 {
	features := project(q)

	z := m.weights.Bias
	for name, value := range features {
		if mean, ok := m.weights.Means[name]; ok {
			scale := m.weights.Scales[name]
			if scale == 0 {
				scale = 1
			}
			value = (value - mean) / scale
		}
		z += m.weights.Coefficients[name] * value
	}

	return sigmoid(z)
}

// project maps a query onto the feature columns the model was trained on.
func project(q models.ShotQuery) map[string]float64 {
	features := map[string]float64{
		"loc_x":         q.LocX,
		"loc_y":         q.LocY,
		"shot_distance": q.ShotDistance,
		"shot_type":     float64(q.ShotType),
		"zone_arc":      0,
		"zone_corner":   0,
		"zone_mid":      0,
		"zone_paint":    0,
	}

	switch zoneGroups[q.ShotZone] {
	case "Arc":
		features["zone_arc"] = 1
	case "Corner":
		features["zone_corner"] = 1
	case "Mid":
		features["zone_mid"] = 1
	case "Paint":
		features["zone_paint"] = 1
	}

	return features
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
