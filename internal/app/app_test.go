package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillswap/cfg"
	"skillswap/internal/service/matching"
	"skillswap/pkg/logger"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	node, err := snowflake.NewNode(7)
	require.NoError(t, err)

	var seen string
	r := gin.New()
	r.Use(requestID(node), accessLog(logger.NewNop()))
	r.GET("/ping", func(c *gin.Context) {
		seen = logger.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	generated := w.Header().Get(requestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, seen)

	_, err = snowflake.ParseString(generated)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "client-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "client-id", w.Header().Get(requestIDHeader))
	assert.Equal(t, "client-id", seen)
}

func TestHealthHandler(t *testing.T) {
	healthy := func(context.Context) error { return nil }
	broken := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name string
		deps map[string]pinger
		code int
	}{
		{"all up", map[string]pinger{"postgres": healthy, "redis": healthy}, http.StatusOK},
		{"redis down", map[string]pinger{"postgres": healthy, "redis": broken}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", healthHandler(tt.deps))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.code, w.Code)

			var body struct {
				Checks map[string]string `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "ok", body.Checks["postgres"])
		})
	}
}

func TestMatchingWeights(t *testing.T) {
	w := MatchingWeights(cfg.MatchingConfig{
		WeightSkill:        0.5,
		WeightAvailability: 0.2,
		WeightLocation:     0.2,
		WeightReputation:   0.1,
	})

	assert.Equal(t, matching.Weights{Skill: 0.5, Availability: 0.2, Location: 0.2, Reputation: 0.1}, w)
}

func TestObservabilityDisabled(t *testing.T) {
	shutdown, err := setupObservability(context.Background(), &cfg.ObservabilityConfig{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
