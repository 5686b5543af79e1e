// Package logrus adapts a *logrus.Entry to the fondue.Logger interface.
package logrus

import (
	"github.com/ParkBlake/fondue"
	"github.com/sirupsen/logrus"
)

type LogrusLogger struct{ E *logrus.Entry }

func (l LogrusLogger) Debug(msg string, f fondue.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f fondue.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l LogrusLogger) Warn(msg string, f fondue.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l LogrusLogger) Error(msg string, f fondue.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
