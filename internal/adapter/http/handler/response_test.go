package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveTest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/test", handler)

	req, _ := http.NewRequest("GET", "/test", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRespondSuccess(t *testing.T) {
	w := serveTest(func(c *gin.Context) {
		c.Set("request_id", "test-request-id")
		respondSuccess(c, http.StatusOK, map[string]string{"outcome": "prediction"})
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.NotNil(t, response.Data)
	assert.Nil(t, response.Error)
	assert.Equal(t, "test-request-id", response.Meta.RequestID)
	assert.NotEmpty(t, response.Meta.Timestamp)
}

func TestRespondError(t *testing.T) {
	t.Run("returns error envelope", func(t *testing.T) {
		w := serveTest(func(c *gin.Context) {
			respondError(c, http.StatusBadRequest, CodeInvalidRequest, "invalid input")
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Success)
		assert.Nil(t, response.Data)
		require.NotNil(t, response.Error)
		assert.Equal(t, CodeInvalidRequest, response.Error.Code)
		assert.Equal(t, "invalid input", response.Error.Message)
	})

	t.Run("generates request ID if not set", func(t *testing.T) {
		w := serveTest(func(c *gin.Context) {
			respondError(c, http.StatusInternalServerError, CodeInternalError, "something went wrong")
		})

		var response Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.Meta.RequestID)
	})
}
