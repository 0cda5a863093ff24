package logging

import (
	"fmt"
	"io"

	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/ccpadmin/internal/core"
)

// New creates a logger writing to out at the given level.
func New(out io.Writer, level string) (logrus.FieldLogger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed parse loglevel: %w", err)
	}

	logger.SetLevel(logLevel)

	return logger, nil
}

func Register(injector *do.Injector, out io.Writer) {
	do.Provide[logrus.FieldLogger](injector, func(_ *do.Injector) (logrus.FieldLogger, error) {
		config, err := do.Invoke[core.Config](injector)
		if err != nil {
			return nil, err
		}

		return New(out, config.LogLevel())
	})
}

// Discard returns a logger that drops everything, for tests.
func Discard() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}
