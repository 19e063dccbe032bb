package model

import (
	"sync"

	"go.uber.org/zap"

	"github.com/rahulbattula415/NBAShotPrediction/internal/logic"
)

// Provider returns a lazily-loading classifier provider. The weights file is
// read on first use and the loaded model is reused across requests. A failed
// load is not cached, so a weights file dropped in later starts working
// without a restart.
func Provider(path string, logger *zap.Logger) logic.ClassifierProvider {
	var (
		mu     sync.Mutex
		loaded *LogisticModel
	)
	sugar := logger.Sugar()

	return func() (logic.Classifier, error) {
		mu.Lock()
		defer mu.Unlock()

		if loaded != nil {
			return loaded, nil
		}

		m, err := Load(path)
		if err != nil {
			sugar.Errorw("Failed to load model", "error", err, "path", path)
			return nil, err
		}

		sugar.Infow("Model loaded successfully", "path", path)
		loaded = m
		return loaded, nil
	}
}
