package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillswap/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type recordedLog struct {
	msg    string
	fields []logger.Field
}

type recordingLogger struct {
	warnings []recordedLog
}

func (l *recordingLogger) Debug(context.Context, string, ...logger.Field) {}
func (l *recordingLogger) Info(context.Context, string, ...logger.Field)  {}
func (l *recordingLogger) Error(context.Context, string, ...logger.Field) {}

func (l *recordingLogger) Warn(_ context.Context, msg string, fields ...logger.Field) {
	l.warnings = append(l.warnings, recordedLog{msg: msg, fields: fields})
}

var errInstrument = errors.New("instrument rejected")

type failingMeterProvider struct {
	noop.MeterProvider
}

func (failingMeterProvider) Meter(string, ...metric.MeterOption) metric.Meter {
	return failingMeter{}
}

type failingMeter struct {
	noop.Meter
}

func (failingMeter) Int64Counter(string, ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	return noop.Int64Counter{}, errInstrument
}

func (failingMeter) Float64Histogram(string, ...metric.Float64HistogramOption) (metric.Float64Histogram, error) {
	return noop.Float64Histogram{}, errInstrument
}

func withMeterProvider(t *testing.T, mp metric.MeterProvider) {
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(mp)
	t.Cleanup(func() { otel.SetMeterProvider(prev) })
}

func serveAccessLog(log logger.Logger) *httptest.ResponseRecorder {
	r := gin.New()
	r.Use(accessLog(log))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	return w
}

func TestAccessLog_RecordsMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	withMeterProvider(t, sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))

	log := &recordingLogger{}
	w := serveAccessLog(log)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, log.warnings)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	assert.True(t, names["http.server.requests"])
	assert.True(t, names["http.server.duration"])
}

func TestAccessLog_InstrumentErrorsAreLogged(t *testing.T) {
	withMeterProvider(t, failingMeterProvider{})

	log := &recordingLogger{}
	w := serveAccessLog(log)
	assert.Equal(t, http.StatusNoContent, w.Code)

	require.Len(t, log.warnings, 2)
	assert.Equal(t, "failed to create request counter", log.warnings[0].msg)
	assert.Equal(t, "failed to create latency histogram", log.warnings[1].msg)
	assert.Equal(t, logger.Field{Key: "error", Value: errInstrument}, log.warnings[0].fields[0])
}
