package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rahulbattula415/NBAShotPrediction/internal/logic"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// APIVersion reported by the root endpoint.
const APIVersion = "1.0.0"

type Config struct {
	Logger *zap.Logger
	// Services
	Prediction logic.PredictionService
	Players    logic.PlayerService
	// Model reports whether the classifier can be obtained; used by health.
	Model logic.ClassifierProvider
}

type Handler struct {
	logger     *zap.SugaredLogger
	validator  *validator.Validate
	prediction logic.PredictionService
	players    logic.PlayerService
	model      logic.ClassifierProvider
	startTime  time.Time
	requests   *requestCounters
}

func New(cfg Config) *Handler {
	return &Handler{
		logger:     cfg.Logger.Sugar(),
		validator:  validator.New(),
		prediction: cfg.Prediction,
		players:    cfg.Players,
		model:      cfg.Model,
		startTime:  time.Now(),
		requests:   &requestCounters{},
	}
}
