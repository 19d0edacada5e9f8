// Package logger configures the process-wide logrus instance. Diagnostics go
// to stderr so stdout stays clean for piped JSON output.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup configures the standard logger for CLI use. Verbose enables debug
// tracing of query construction and endpoint calls; otherwise only warnings
// surface.
func Setup(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}
