package observability

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
)

func TestInitLoggerLevels(t *testing.T) {
	InitLogger("findcare-api", "development")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	InitLogger("findcare-api", "production")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	t.Run("without a span the base logger is returned", func(t *testing.T) {
		buf.Reset()
		LoggerFromContext(context.Background()).Info().Msg("hello")
		assert.NotContains(t, buf.String(), "trace_id")
	})

	t.Run("an active span contributes trace correlation fields", func(t *testing.T) {
		buf.Reset()
		sc := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID:    trace.TraceID{0x01},
			SpanID:     trace.SpanID{0x02},
			TraceFlags: trace.FlagsSampled,
		})
		ctx := trace.ContextWithSpanContext(context.Background(), sc)

		LoggerFromContext(ctx).Info().Msg("hello")
		assert.Contains(t, buf.String(), "trace_id")
		assert.Contains(t, buf.String(), sc.TraceID().String())
	})
}
