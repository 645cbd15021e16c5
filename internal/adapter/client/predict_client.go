package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrTransport marks failures to reach the prediction service or to read its answer
var ErrTransport = errors.New("prediction service unreachable")

// PredictRequest represents a request to the prediction service
type PredictRequest struct {
	Texts []string `json:"texts"`
}

// PredictionResult represents a single result record
type PredictionResult struct {
	Prediction string `json:"prediction"`
}

// PredictResponse represents the response from the prediction service.
// Exactly one of Error and Results is expected to be set.
type PredictResponse struct {
	Results []PredictionResult `json:"results,omitempty"`
	Error   json.RawMessage    `json:"error,omitempty"`
}

// ErrorMessage returns the service-reported error and whether it is set.
// Any value other than null, false, 0 and "" counts as set; strings are
// returned unquoted, everything else as its JSON text.
func (r *PredictResponse) ErrorMessage() (string, bool) {
	raw := bytes.TrimSpace(r.Error)
	switch string(raw) {
	case "", "null", "false", `""`:
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil && n == 0 {
		return "", false
	}

	return string(raw), true
}

// PredictClient is an HTTP client for the prediction service
type PredictClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPredictClient creates a new prediction service client
func NewPredictClient(baseURL string, timeout time.Duration) *PredictClient {
	return &PredictClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Predict sends texts for prediction.
// The HTTP status is not inspected; any body is decoded as a PredictResponse.
func (c *PredictClient) Predict(ctx context.Context, texts []string, requestID string) (*PredictResponse, error) {
	body, err := json.Marshal(PredictRequest{Texts: texts})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send request: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response (status %d): %v", ErrTransport, resp.StatusCode, err)
	}

	result, err := decodePredictResponse(respBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode response (status %d): %v", ErrTransport, resp.StatusCode, err)
	}

	return result, nil
}

// decodePredictResponse accepts a single JSON object and nothing else
func decodePredictResponse(body []byte) (*PredictResponse, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errors.New("response body is not a JSON object")
	}

	var result PredictResponse
	if err := json.Unmarshal(trimmed, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Ping checks that the prediction service answers HTTP at all
func (c *PredictClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("prediction service not ready: status %d", resp.StatusCode)
	}

	return nil
}
