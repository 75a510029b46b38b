package xcover

import (
	"io"

	"github.com/sirupsen/logrus"
)

// logFielder is the subset of logrus.FieldLogger the search driver needs.
// Both a *logrus.Logger set through WithLogger and the silent default
// discardLogger satisfy it.
type logFielder interface {
	WithFields(fields logrus.Fields) *logrus.Entry
}

// discardLogger is the default, silent logger: xcover is a library and must
// not emit anything unless a caller opts in via WithLogger.
var discardLoggerInstance = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

type discardLogger struct{}

func (discardLogger) WithFields(fields logrus.Fields) *logrus.Entry {
	return discardLoggerInstance.WithFields(fields)
}

// WithLogger returns a copy of inst that logs search trace events (cover,
// uncover, contradiction) at Debug level through logger. The zero value (no
// call to WithLogger) is silent.
func (inst *Instance) WithLogger(logger *logrus.Logger) *Instance {
	cp := *inst
	cp.logger = logger
	return &cp
}
