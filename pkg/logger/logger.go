package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger for the whole game. It is usable before Init
// with logrus defaults so packages and tests can log without setup.
var Log = logrus.New()

// Init configures the global logger. It should be called once from main.
// Empty arguments fall back to the LOG_LEVEL and LOG_FORMAT environment
// variables, then to "info" and "text".
func Init(level, format string) {
	Log = logrus.New()

	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	// stdout belongs to the terminal host
	Log.SetOutput(os.Stderr)
}

// SetOutput redirects the global logger, e.g. to a file while the terminal
// host owns the screen.
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}
