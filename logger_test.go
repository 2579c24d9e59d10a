package gotopic

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInheritLogger_AddsFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)

	l := inheritLogger(newLogrusLogger(base), map[string]interface{}{"context": "router", "exchange": "payments"})

	l.Info("Binding created", logField{Key: "queue", Value: "Q1"})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Binding created", entry.Message)
	assert.Equal(t, "gotopic", entry.Data["lib"])
	assert.Equal(t, "router", entry.Data["context"])
	assert.Equal(t, "payments", entry.Data["exchange"])
	assert.Equal(t, "Q1", entry.Data["queue"])
}

func TestStdLogger_Error(t *testing.T) {
	base, hook := test.NewNullLogger()

	newLogrusLogger(base).Error(errors.New("boom"), "Could not deliver message")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "boom")
}

func TestInheritLogger_KeepsNoLogger(t *testing.T) {
	l := inheritLogger(&noLogger{}, map[string]interface{}{"context": "router"})

	_, ok := l.(*noLogger)
	assert.True(t, ok)
}

func TestLoggerForMode(t *testing.T) {
	t.Setenv("GOTOPIC_MODE", "")

	_, ok := loggerForMode(Debug).(*stdLogger)
	assert.True(t, ok)

	_, ok = loggerForMode(Release).(*noLogger)
	assert.True(t, ok)

	t.Setenv("GOTOPIC_MODE", Debug)

	_, ok = loggerForMode(Release).(*stdLogger)
	assert.True(t, ok)
}

func TestNewHandlerSink_Mode(t *testing.T) {
	t.Setenv("GOTOPIC_MODE", "")

	_, ok := NewHandlerSink(NewHandlerSinkOptions().SetMode(Debug)).logger.(*stdLogger)
	assert.True(t, ok)

	_, ok = NewHandlerSink(nil).logger.(*noLogger)
	assert.True(t, ok)

	_, ok = NewHandlerSink(NewHandlerSinkOptions().SetMode("verbose")).logger.(*noLogger)
	assert.True(t, ok)
}

func TestRouter_LogsBindings(t *testing.T) {
	base, hook := test.NewNullLogger()

	router, err := newRouterFromOptions(DefaultRouterOptions().SetName("payments"))
	require.NoError(t, err)

	router.logger = inheritLogger(newLogrusLogger(base), map[string]interface{}{"context": "router"})

	require.NoError(t, router.Bind("Q1", "payment.*"))
	require.Error(t, router.Bind("Q1", "payment..error"))

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Binding created", entries[0].Message)
	assert.Equal(t, "payment.*", entries[0].Data["pattern"])
	assert.Equal(t, logrus.ErrorLevel, entries[1].Level)
}
