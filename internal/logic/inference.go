package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rahulbattula415/NBAShotPrediction/internal/models"
)

// DefaultPredictionTimeout bounds each classifier call.
const DefaultPredictionTimeout = 5 * time.Second

// Classifier is the external shot model. Both calls take a batch; this
// service always passes batches of length 1. Implementations should honor
// context cancellation but are not required to abort mid-inference.
type Classifier interface {
	Predict(ctx context.Context, batch []models.ShotQuery) ([]bool, error)
	PredictProba(ctx context.Context, batch []models.ShotQuery) ([]float64, error)
}

// ClassifierProvider yields the classifier, typically loading it lazily on
// first use. A provider error means the model cannot be obtained at all.
type ClassifierProvider func() (Classifier, error)

// inferenceGateway runs the label and probability calls concurrently under a
// shared deadline. Both must succeed; the first timeout fails the whole
// operation even if the other call completed.
type inferenceGateway struct {
	provider ClassifierProvider
	timeout  time.Duration
}

func newInferenceGateway(provider ClassifierProvider, timeout time.Duration) *inferenceGateway {
	if timeout <= 0 {
		timeout = DefaultPredictionTimeout
	}
	return &inferenceGateway{provider: provider, timeout: timeout}
}

// Infer scores a single shot, returning the predicted label and P(made).
func (ig *inferenceGateway) Infer(ctx context.Context, query models.ShotQuery) (bool, float64, error) {
	clf, err := ig.provider()
	if err != nil {
		return false, 0, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(ctx, ig.timeout)
	defer cancel()

	batch := []models.ShotQuery{query}

	var (
		made        bool
		probability float64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		labels, err := clf.Predict(gctx, batch)
		if err != nil {
			return fmt.Errorf("predict: %w", err)
		}
		if len(labels) != 1 {
			return fmt.Errorf("predict: expected 1 label, got %d", len(labels))
		}
		made = labels[0]
		return nil
	})

	g.Go(func() error {
		probs, err := clf.PredictProba(gctx, batch)
		if err != nil {
			return fmt.Errorf("predict_proba: %w", err)
		}
		if len(probs) != 1 {
			return fmt.Errorf("predict_proba: expected 1 probability, got %d", len(probs))
		}
		probability = probs[0]
		return nil
	})

	// Join with a real deadline: a classifier that ignores cancellation must
	// not stretch the operation past the timeout. When the deadline fires
	// first, the in-flight calls keep running and their results are
	// discarded; nothing reclaims them early.
	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return false, 0, ErrModelTimeout
			}
			return false, 0, &ModelError{Cause: err}
		}
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return false, 0, ErrModelTimeout
		}
		return false, 0, &ModelError{Cause: ctx.Err()}
	}

	return made, probability, nil
}
