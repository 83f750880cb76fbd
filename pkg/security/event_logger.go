package security

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType names a security-relevant occurrence
type EventType string

const (
	EventUploadRejected     EventType = "upload_rejected"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventCandidateDeleted   EventType = "candidate_deleted"
	EventServerError        EventType = "server_error"
)

// Severity is derived from the EventType, never supplied by callers
type Severity string

const (
	SeverityINFO   Severity = "INFO"
	SeverityMEDIUM Severity = "MEDIUM"
	SeverityWARN   Severity = "WARN"
	SeverityHIGH   Severity = "HIGH"
)

var eventSeverity = map[EventType]Severity{
	EventCandidateDeleted:   SeverityINFO,
	EventServerError:        SeverityMEDIUM,
	EventUploadRejected:     SeverityWARN,
	EventRateLimitTriggered: SeverityWARN,
}

// GetSeverity returns the severity for an event type, MEDIUM when unmapped
func GetSeverity(eventType EventType) Severity {
	if severity, ok := eventSeverity[eventType]; ok {
		return severity
	}
	return SeverityMEDIUM
}

func levelFor(severity Severity) zapcore.Level {
	switch severity {
	case SeverityINFO:
		return zapcore.InfoLevel
	case SeverityHIGH:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// Event is one entry in the security log
type Event struct {
	Timestamp time.Time
	Event     EventType
	IP        string
	UserAgent string
	RequestID string
	Details   map[string]interface{}
}

// EventLogger writes security events as structured zap entries
type EventLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var (
	defaultLogger *EventLogger
	defaultMu     sync.Mutex
)

// NewEventLogger builds a JSON logger on stdout
func NewEventLogger(serviceName, environment string) *EventLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return NewEventLoggerWithZap(logger, serviceName, environment)
}

// NewEventLoggerWithZap wraps an existing zap logger
func NewEventLoggerWithZap(logger *zap.Logger, serviceName, environment string) *EventLogger {
	return &EventLogger{zapLogger: logger, serviceName: serviceName, environment: environment}
}

// SetDefault replaces the process-wide event logger
func SetDefault(l *EventLogger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// DefaultLogger returns the process-wide event logger, creating a development one on first use
func DefaultLogger() *EventLogger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = NewEventLogger("resume-collector", "development")
	}
	return defaultLogger
}

// Log writes the event at the level matching its severity
func (l *EventLogger) Log(_ context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	severity := GetSeverity(event.Event)

	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(event.Event)),
		zap.String("severity", string(severity)),
		zap.Time("occurred_at", event.Timestamp),
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	l.zapLogger.Log(levelFor(severity), string(event.Event), fields...)
}

// LogUploadRejected records a resume that failed the file checks
func (l *EventLogger) LogUploadRejected(ctx context.Context, ip, userAgent, requestID, kind, reason string) {
	l.Log(ctx, Event{
		Event:     EventUploadRejected,
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
		Details:   map[string]interface{}{"kind": kind, "reason": reason},
	})
}

// LogRateLimitTriggered records a request turned away by a limiter
func (l *EventLogger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, endpoint string) {
	l.Log(ctx, Event{
		Event:     EventRateLimitTriggered,
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
		Details:   map[string]interface{}{"endpoint": endpoint},
	})
}

// LogCandidateDeleted records removal of a candidate's personal data
func (l *EventLogger) LogCandidateDeleted(ctx context.Context, ip, requestID, candidateID string) {
	l.Log(ctx, Event{
		Event:     EventCandidateDeleted,
		IP:        ip,
		RequestID: requestID,
		Details:   map[string]interface{}{"candidate_id": candidateID},
	})
}

// LogServerError records an unexpected failure without exposing it to the client
func (l *EventLogger) LogServerError(ctx context.Context, ip, requestID, path string, err error) {
	l.Log(ctx, Event{
		Event:     EventServerError,
		IP:        ip,
		RequestID: requestID,
		Details:   map[string]interface{}{"path": path, "error": err.Error()},
	})
}

// Sync flushes buffered entries
func (l *EventLogger) Sync() error {
	return l.zapLogger.Sync()
}
