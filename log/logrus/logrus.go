// Package logrus adapts a logrus entry to fluentjson.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/fluentjson"
)

var _ fluentjson.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

// New returns an adapter tagging every entry with component=fluentjson.
func New(l *logrus.Logger) LogrusLogger {
	return LogrusLogger{E: l.WithField("component", "fluentjson")}
}

func (l LogrusLogger) Debug(msg string, f fluentjson.Fields) { l.with(f).Debug(msg) }
func (l LogrusLogger) Info(msg string, f fluentjson.Fields)  { l.with(f).Info(msg) }
func (l LogrusLogger) Warn(msg string, f fluentjson.Fields)  { l.with(f).Warn(msg) }
func (l LogrusLogger) Error(msg string, f fluentjson.Fields) { l.with(f).Error(msg) }

// with lifts an "err" field into logrus' own error key.
func (l LogrusLogger) with(f fluentjson.Fields) *logrus.Entry {
	e := l.E
	for k, v := range f {
		if err, ok := v.(error); ok && k == "err" {
			e = e.WithError(err)
			continue
		}
		e = e.WithField(k, v)
	}
	return e
}
