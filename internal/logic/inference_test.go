package logic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rahulbattula415/NBAShotPrediction/internal/models"
)

func TestInferenceGateway_BothCallsSucceed(t *testing.T) {
	clf := &MockClassifier{
		PredictFunc: func(ctx context.Context, batch []models.ShotQuery) ([]bool, error) {
			if len(batch) != 1 {
				t.Errorf("batch length = %d, want 1", len(batch))
			}
			return []bool{false}, nil
		},
		PredictProbaFunc: func(ctx context.Context, batch []models.ShotQuery) ([]float64, error) {
			return []float64{0.31}, nil
		},
	}
	gw := newInferenceGateway(staticProvider(clf), time.Second)

	made, prob, err := gw.Infer(context.Background(), baseQuery())
	if err != nil {
		t.Fatalf("Infer failed: %v", err)
	}
	if made {
		t.Error("made = true, want false")
	}
	if prob != 0.31 {
		t.Errorf("probability = %v, want 0.31", prob)
	}
}

func TestInferenceGateway_TimeoutFailsWholeOperation(t *testing.T) {
	// The label call returns instantly; the probability call stalls. The
	// operation must still fail with a timeout.
	clf := &MockClassifier{
		PredictFunc: func(ctx context.Context, batch []models.ShotQuery) ([]bool, error) {
			return []bool{true}, nil
		},
		PredictProbaFunc: func(ctx context.Context, batch []models.ShotQuery) ([]float64, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	gw := newInferenceGateway(staticProvider(clf), 20*time.Millisecond)

	start := time.Now()
	_, _, err := gw.Infer(context.Background(), baseQuery())
	if !errors.Is(err, ErrModelTimeout) {
		t.Fatalf("err = %v, want ErrModelTimeout", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("Infer took %v, should fail fast on the deadline", elapsed)
	}
}

func TestInferenceGateway_TimeoutWithClassifierIgnoringContext(t *testing.T) {
	// Neither call watches the context; both eventually return successfully.
	// The deadline must still fail the operation instead of surfacing the
	// late results as success.
	clf := &MockClassifier{
		PredictFunc: func(ctx context.Context, batch []models.ShotQuery) ([]bool, error) {
			time.Sleep(300 * time.Millisecond)
			return []bool{true}, nil
		},
		PredictProbaFunc: func(ctx context.Context, batch []models.ShotQuery) ([]float64, error) {
			time.Sleep(300 * time.Millisecond)
			return []float64{0.9}, nil
		},
	}
	gw := newInferenceGateway(staticProvider(clf), 20*time.Millisecond)

	start := time.Now()
	_, _, err := gw.Infer(context.Background(), baseQuery())
	if !errors.Is(err, ErrModelTimeout) {
		t.Fatalf("err = %v, want ErrModelTimeout from an uncooperative classifier", err)
	}
	if elapsed := time.Since(start); elapsed > 250*time.Millisecond {
		t.Errorf("Infer took %v, must return on the deadline, not when the classifier finishes", elapsed)
	}
}

func TestInferenceGateway_BadBatchLength(t *testing.T) {
	clf := &MockClassifier{
		PredictFunc: func(ctx context.Context, batch []models.ShotQuery) ([]bool, error) {
			return []bool{true, false}, nil
		},
	}
	gw := newInferenceGateway(staticProvider(clf), time.Second)

	_, _, err := gw.Infer(context.Background(), baseQuery())
	var modelErr *ModelError
	if !errors.As(err, &modelErr) {
		t.Errorf("err = %v, want *ModelError for a malformed batch result", err)
	}
}

func TestInferenceGateway_ProviderError(t *testing.T) {
	gw := newInferenceGateway(func() (Classifier, error) {
		return nil, errors.New("not loaded")
	}, time.Second)

	_, _, err := gw.Infer(context.Background(), baseQuery())
	if !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("err = %v, want ErrModelUnavailable", err)
	}
}
