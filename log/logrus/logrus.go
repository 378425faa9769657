// Package logrus adapts a *logrus.Entry to the braces.Logger interface.
package logrus

import (
	"github.com/bracekit/braces"
	"github.com/sirupsen/logrus"
)

type LogrusLogger struct{ E *logrus.Entry }

var _ braces.Logger = LogrusLogger{}

func (l LogrusLogger) Debug(msg string, f braces.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f braces.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l LogrusLogger) Warn(msg string, f braces.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l LogrusLogger) Error(msg string, f braces.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
