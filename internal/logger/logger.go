package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger instance. Initialized with sane defaults so it
// works before Init is called.
var Log *logrus.Logger

func init() {
	Log = logrus.New()
	Log.SetLevel(logrus.InfoLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	Log.SetOutput(os.Stdout)
}

// Init sets the log level from a string ("debug", "info", "warn", "error").
// Unknown levels fall back to info.
func Init(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Log.SetLevel(parsed)
}

func Debugf(format string, args ...any) { Log.Debugf(format, args...) }
func Infof(format string, args ...any)  { Log.Infof(format, args...) }
func Warnf(format string, args ...any)  { Log.Warnf(format, args...) }
func Errorf(format string, args ...any) { Log.Errorf(format, args...) }
