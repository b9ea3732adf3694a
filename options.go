package automaton

import (
	"io"

	"github.com/sirupsen/logrus"
)

type options struct {
	logger logrus.FieldLogger
}

// Option Configures Determinize and Optimize.
type Option func(*options)

// WithLogger Routes debug events of the construction and minimization passes to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts ...Option) *options {
	o := &options{logger: discardLogger}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}()
