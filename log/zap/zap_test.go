package zap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unkn0wn-root/fluentjson"
)

func TestLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core))

	l.Debug("d", fluentjson.Fields{"n": 1})
	l.Info("i", nil)
	l.Warn("w", fluentjson.Fields{"err": errors.New("boom")})
	l.Error("e", fluentjson.Fields{"type": "x"})

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "fluentjson", entries[0].LoggerName)
	assert.EqualValues(t, 1, entries[0].ContextMap()["n"])

	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Empty(t, entries[1].Context)

	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["err"])

	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestFieldsAreSorted(t *testing.T) {
	fields := zf(fluentjson.Fields{"b": 1, "a": 2, "c": 3})
	require.Len(t, fields, 3)
	assert.Equal(t, "a", fields[0].Key)
	assert.Equal(t, "b", fields[1].Key)
	assert.Equal(t, "c", fields[2].Key)
}

func TestDecodeThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := fluentjson.FromString[map[string]int](`{"a":1}`).
		WithLogger(New(zap.New(core))).
		Decode()
	require.NoError(t, err)

	got := logs.FilterMessage("json decoded").AllUntimed()
	require.Len(t, got, 1)
	assert.Equal(t, "map[string]int", got[0].ContextMap()["type"])
}

func TestZapLoggerLiteral(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	var l fluentjson.Logger = ZapLogger{L: zap.New(core)}

	l.Debug("hidden", nil)
	l.Info("shown", fluentjson.Fields{"bytes": 3})

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0].Message)
	assert.Empty(t, entries[0].LoggerName)
}
