package gotopic

import (
	"os"

	"github.com/sirupsen/logrus"
)

// logField is a single structured key/value attached to a log entry.
type logField struct {
	Key   string
	Value interface{}
}

// logger is the interface to send logs to.
type logger interface {
	Error(err error, message string, fields ...logField)
	Warn(message string, fields ...logField)
	Info(message string, fields ...logField)
	Debug(message string, fields ...logField)
}

const loggingPrefix = "gotopic"

// stdLogger logs to stdout through logrus.
type stdLogger struct {
	logger    *logrus.Logger
	logFields logrus.Fields
}

// newStdLogger instantiates a stdLogger writing text entries without timestamps to stdout.
func newStdLogger() logger {
	formatter := new(logrus.TextFormatter)
	formatter.DisableTimestamp = true

	return newLogrusLogger(&logrus.Logger{
		Out:       os.Stdout,
		Formatter: formatter,
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.DebugLevel,
	})
}

func newLogrusLogger(l *logrus.Logger) *stdLogger {
	return &stdLogger{
		logger:    l,
		logFields: logrus.Fields{"lib": loggingPrefix},
	}
}

func (l *stdLogger) entry(fields []logField) *logrus.Entry {
	entry := l.logger.WithFields(l.logFields)

	for _, field := range fields {
		entry = entry.WithField(field.Key, field.Value)
	}

	return entry
}

func (l *stdLogger) Error(err error, message string, fields ...logField) {
	l.entry(fields).WithError(err).Error(message)
}

func (l *stdLogger) Warn(message string, fields ...logField) {
	l.entry(fields).Warn(message)
}

func (l *stdLogger) Info(message string, fields ...logField) {
	l.entry(fields).Info(message)
}

func (l *stdLogger) Debug(message string, fields ...logField) {
	l.entry(fields).Debug(message)
}

// noLogger does not log at all, this is the default.
type noLogger struct{}

func (l noLogger) Error(_ error, _ string, _ ...logField) {}

func (l noLogger) Warn(_ string, _ ...logField) {}

func (l noLogger) Info(_ string, _ ...logField) {}

func (l noLogger) Debug(_ string, _ ...logField) {}

// inheritLogger returns a logger carrying the parent's fields plus the given ones.
// A noLogger parent stays a noLogger.
func inheritLogger(parent logger, logFields map[string]interface{}) logger {
	std, ok := parent.(*stdLogger)
	if !ok {
		return parent
	}

	fields := make(logrus.Fields, len(std.logFields)+len(logFields))

	for k, v := range std.logFields {
		fields[k] = v
	}

	for k, v := range logFields {
		fields[k] = v
	}

	return &stdLogger{
		logger:    std.logger,
		logFields: fields,
	}
}

// loggerForMode returns the logger matching the mode, which the environment variable "GOTOPIC_MODE" overrides.
func loggerForMode(mode string) logger {
	if modeOverride := os.Getenv("GOTOPIC_MODE"); isValidMode(modeOverride) {
		mode = modeOverride
	}

	if mode == Debug {
		return newStdLogger()
	}

	return &noLogger{}
}
