package service

import (
	"context"
	"errors"
)

// ErrNoResults is returned when the prediction service answers without an
// error and without any result records.
var ErrNoResults = errors.New("prediction service returned no results")

// Prediction represents a single label produced by the prediction service
type Prediction struct {
	Label string `json:"prediction"`
}

// ServiceError is an error reported by the prediction service in its response body
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return "prediction service error: " + e.Message
}

// Predictor defines the interface for text prediction
type Predictor interface {
	// Predict returns one prediction per input text, in order
	Predict(ctx context.Context, texts []string) ([]*Prediction, error)
}
