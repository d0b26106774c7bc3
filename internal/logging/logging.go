package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup returns the process logger. Diagnostics go to stderr so command
// output stays clean for piping.
func Setup(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}
