package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ressKim-io/NewsGuard/internal/domain/service"
)

func newTestService(t *testing.T, handler http.HandlerFunc) service.Predictor {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewPredictionService(NewPredictClient(server.URL, 5*time.Second))
}

func TestPredictionService_Predict(t *testing.T) {
	t.Run("maps results to predictions", func(t *testing.T) {
		predictor := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			_, _ = w.Write([]byte(`{"results":[{"prediction":"real"},{"prediction":"fake"}]}`))
		})

		predictions, err := predictor.Predict(context.Background(), []string{"a", "b"})

		require.NoError(t, err)
		require.Len(t, predictions, 2)
		assert.Equal(t, "real", predictions[0].Label)
		assert.Equal(t, "fake", predictions[1].Label)
	})

	t.Run("forwards request id from context", func(t *testing.T) {
		predictor := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "ctx-request-id", r.Header.Get("X-Request-ID"))
			_, _ = w.Write([]byte(`{"results":[{"prediction":"real"}]}`))
		})

		ctx := WithRequestID(context.Background(), "ctx-request-id")
		_, err := predictor.Predict(ctx, []string{"a"})

		assert.NoError(t, err)
	})

	t.Run("service error", func(t *testing.T) {
		predictor := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"error":"bad input"}`))
		})

		predictions, err := predictor.Predict(context.Background(), []string{"a"})

		assert.Nil(t, predictions)
		var svcErr *service.ServiceError
		require.True(t, errors.As(err, &svcErr))
		assert.Equal(t, "bad input", svcErr.Message)
	})

	t.Run("non-string service error", func(t *testing.T) {
		predictor := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"error":42}`))
		})

		_, err := predictor.Predict(context.Background(), []string{"a"})

		var svcErr *service.ServiceError
		require.True(t, errors.As(err, &svcErr))
		assert.Equal(t, "42", svcErr.Message)
	})

	t.Run("empty error string falls through to results", func(t *testing.T) {
		predictor := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"error":"","results":[{"prediction":"real"}]}`))
		})

		predictions, err := predictor.Predict(context.Background(), []string{"a"})

		require.NoError(t, err)
		assert.Equal(t, "real", predictions[0].Label)
	})

	t.Run("trailing garbage is a transport error", func(t *testing.T) {
		predictor := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"results":[{"prediction":"real"}]} <html>oops</html>`))
		})

		predictions, err := predictor.Predict(context.Background(), []string{"a"})

		assert.Nil(t, predictions)
		assert.ErrorIs(t, err, ErrTransport)
	})

	t.Run("null body is a transport error", func(t *testing.T) {
		predictor := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("null"))
		})

		_, err := predictor.Predict(context.Background(), []string{"a"})

		assert.ErrorIs(t, err, ErrTransport)
	})

	t.Run("empty results", func(t *testing.T) {
		predictor := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"results":[]}`))
		})

		predictions, err := predictor.Predict(context.Background(), []string{"a"})

		assert.Nil(t, predictions)
		assert.ErrorIs(t, err, service.ErrNoResults)
	})

	t.Run("transport error passes through", func(t *testing.T) {
		predictor := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>gateway timeout</html>"))
		})

		_, err := predictor.Predict(context.Background(), []string{"a"})

		assert.ErrorIs(t, err, ErrTransport)
	})
}
