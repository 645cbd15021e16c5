package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/ressKim-io/NewsGuard/internal/domain/service"
)

// PredictionService adapts PredictClient to the Predictor interface
type PredictionService struct {
	client *PredictClient
}

// NewPredictionService creates a new PredictionService
func NewPredictionService(client *PredictClient) service.Predictor {
	return &PredictionService{client: client}
}

// Predict classifies texts and maps the wire response to domain predictions
func (s *PredictionService) Predict(ctx context.Context, texts []string) ([]*service.Prediction, error) {
	resp, err := s.client.Predict(ctx, texts, requestIDFrom(ctx))
	if err != nil {
		return nil, err
	}

	if msg, ok := resp.ErrorMessage(); ok {
		return nil, &service.ServiceError{Message: msg}
	}
	if len(resp.Results) == 0 {
		return nil, service.ErrNoResults
	}

	predictions := make([]*service.Prediction, len(resp.Results))
	for i, r := range resp.Results {
		predictions[i] = &service.Prediction{Label: r.Prediction}
	}

	return predictions, nil
}

type requestIDKey struct{}

// WithRequestID returns a context carrying the request id forwarded to the prediction service
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.New().String()
}
