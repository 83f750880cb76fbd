package security

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*EventLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewEventLoggerWithZap(zap.New(core), "resume-collector", "test"), logs
}

func TestGetSeverity(t *testing.T) {
	assert.Equal(t, SeverityWARN, GetSeverity(EventUploadRejected))
	assert.Equal(t, SeverityINFO, GetSeverity(EventCandidateDeleted))
	assert.Equal(t, SeverityMEDIUM, GetSeverity(EventType("unknown")))
}

func TestEventLogger(t *testing.T) {
	ctx := context.Background()

	t.Run("Should log upload rejections at warn with details", func(t *testing.T) {
		l, logs := observedLogger()
		l.LogUploadRejected(ctx, "203.0.113.9", "curl/8", "req-1", "UnsupportedFileType", "Resume must be PDF, DOC or DOCX. Got: a.exe")

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.WarnLevel, entry.Level)
		assert.Equal(t, "upload_rejected", entry.Message)

		fields := entry.ContextMap()
		assert.Equal(t, "resume-collector", fields["service"])
		assert.Equal(t, "WARN", fields["severity"])
		assert.Equal(t, "203.0.113.9", fields["ip"])
		assert.Equal(t, "req-1", fields["request_id"])
		assert.Contains(t, fields["details"], "UnsupportedFileType")
	})

	t.Run("Should log deletions at info and omit empty fields", func(t *testing.T) {
		l, logs := observedLogger()
		l.LogCandidateDeleted(ctx, "", "", "abc")

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.InfoLevel, entry.Level)
		fields := entry.ContextMap()
		assert.NotContains(t, fields, "ip")
		assert.NotContains(t, fields, "request_id")
		assert.Contains(t, fields["details"], `"candidate_id":"abc"`)
	})

	t.Run("Should carry the error text of server errors", func(t *testing.T) {
		l, logs := observedLogger()
		l.LogServerError(ctx, "10.0.0.1", "req-2", "/candidates", errors.New("boom"))

		require.Equal(t, 1, logs.FilterMessage("server_error").Len())
		assert.Contains(t, logs.All()[0].ContextMap()["details"], "boom")
	})
}

func TestDefaultLogger(t *testing.T) {
	l, _ := observedLogger()
	SetDefault(l)
	t.Cleanup(func() { SetDefault(nil) })

	assert.Same(t, l, DefaultLogger())
}
