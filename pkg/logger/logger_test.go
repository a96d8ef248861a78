package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppLogger_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger("production", &buf)

	ctx := WithRequestID(context.Background(), "req-1")
	log.Info(ctx, "matches computed", Field{Key: "count", Value: 3}, Field{Key: "user_id", Value: "u1"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "matches computed", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, float64(3), entry["count"])
	assert.Equal(t, "u1", entry["user_id"])
}

func TestAppLogger_ProductionSkipsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger("production", &buf)

	log.Debug(context.Background(), "noise")
	assert.Empty(t, buf.String())
}

func TestAppLogger_DevelopmentIncludesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger("development", &buf)

	log.Debug(context.Background(), "scoring candidate", Field{Key: "error", Value: errors.New("boom")})
	assert.Contains(t, buf.String(), "scoring candidate")
	assert.Contains(t, buf.String(), "error=boom")
}
