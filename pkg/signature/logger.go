package signature

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

type loggerBox struct {
	l logrus.FieldLogger
}

var loggerPtr atomic.Pointer[loggerBox]

func init() {
	SetLogger(nil)
}

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger routes the package's debug events (stroke started, degenerate
// surface ignored, signature cleared) to l. By default nothing is logged;
// passing nil restores that.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = newDiscardLogger()
	}
	loggerPtr.Store(&loggerBox{l: l})
}

func logger() logrus.FieldLogger {
	return loggerPtr.Load().l
}
