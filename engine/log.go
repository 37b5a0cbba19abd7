package engine

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

type loggerHolder struct{ l logrus.FieldLogger }

var logger atomic.Pointer[loggerHolder]

func init() { SetLogger(nil) }

func defaultLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetLogger redirects engine diagnostics. Passing nil restores the default.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = defaultLogger()
	}
	logger.Store(&loggerHolder{l: l})
}

// Log returns the logger engines use for rejected actions and round summaries.
func Log() logrus.FieldLogger {
	return logger.Load().l
}

// Reject logs a rejected action at debug level and returns err unchanged,
// so call sites can write `return engine.Reject("chess", "move", err)`.
func Reject(game, action string, err error) error {
	Log().WithFields(logrus.Fields{
		"game":   game,
		"action": action,
	}).WithError(err).Debug("action rejected")
	return err
}
