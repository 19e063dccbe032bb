package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rahulbattula415/NBAShotPrediction/internal/config"
	"github.com/rahulbattula415/NBAShotPrediction/internal/handlers"
	"github.com/rahulbattula415/NBAShotPrediction/internal/logic"
	"github.com/rahulbattula415/NBAShotPrediction/internal/model"
	"github.com/rahulbattula415/NBAShotPrediction/internal/models"
)

func main() {
	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	sugar.Infow("Starting NBA shot prediction API", "env", cfg.Env, "port", cfg.Port)

	classifier := model.Provider(cfg.ModelPath, logger)
	players := logic.NewPlayerService(cfg.PlayersPath, logger)
	prediction := logic.NewPredictionService(logic.PredictionConfig{
		Classifier: classifier,
		Players:    players,
		Timeout:    cfg.PredictionTimeout,
		Capacity:   cfg.CacheCapacity,
		Logger:     logger,
	})

	warmUp(prediction, sugar)

	h := handlers.New(handlers.Config{
		Logger:     logger,
		Prediction: prediction,
		Players:    players,
		Model:      classifier,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h.Routes(cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infow("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("HTTP server failed", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	sugar.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Errorw("Shutdown failed", "error", err)
	}
	sugar.Info("Server stopped")
}

// warmUp primes the model and cache with a representative query so the first
// real request does not pay the load cost. Failure is non-fatal; the model
// may simply not be present yet.
func warmUp(prediction logic.PredictionService, sugar *zap.SugaredLogger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := prediction.PredictShot(ctx, models.ShotQuery{
		LocX:         0,
		LocY:         10,
		ShotDistance: 10,
		ShotType:     2,
		ShotZone:     models.ZoneMidRange,
		PlayerName:   "LeBron James",
	})
	if err != nil {
		sugar.Warnw("Model warm-up failed", "error", err)
		return
	}
	sugar.Info("Model warmed up successfully")
}
