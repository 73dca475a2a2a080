// Package zap adapts a *zap.Logger to fluentjson.Logger.
package zap

import (
	"sort"

	"github.com/unkn0wn-root/fluentjson"
	"go.uber.org/zap"
)

var _ fluentjson.Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

// New returns an adapter logging under the "fluentjson" name.
func New(l *zap.Logger) ZapLogger { return ZapLogger{L: l.Named("fluentjson")} }

func (z ZapLogger) Debug(msg string, f fluentjson.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f fluentjson.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f fluentjson.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f fluentjson.Fields) { z.L.Error(msg, zf(f)...) }

// zf emits fields in key order so output is stable across calls.
func zf(f fluentjson.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		if err, ok := f[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
