// Package logger holds the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tomz197/mythbusters/internal/config"
)

// Log is the application logger. It is usable before Init (writes to
// stderr at info level) so packages never see a nil logger.
var Log = logrus.New()

// Init configures Log from the environment and directs output to out.
// LOG_LEVEL selects the level (default "info"), LOG_FORMAT=json selects the
// JSON formatter, anything else the text formatter.
func Init(out io.Writer) {
	level, err := logrus.ParseLevel(config.GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(config.GetEnv("LOG_FORMAT", "text")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	if out == nil {
		out = os.Stderr
	}
	Log.SetOutput(out)
}

// OpenFile opens LOG_FILE for appending. When LOG_FILE is unset it returns
// io.Discard, which suits the local terminal game whose stdout is the
// screen. The returned closer is always safe to call.
func OpenFile() (io.Writer, func() error, error) {
	path := config.GetEnv("LOG_FILE", "")
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// Component returns an entry tagged with the component name.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
