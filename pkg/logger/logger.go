package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Init configures the shared logger. Production gets JSON output at info
// level unless level overrides it; everything else gets timestamped text.
func Init(environment, level string) {
	log.SetOutput(os.Stdout)

	if environment == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
		log.SetLevel(logrus.DebugLevel)
	}

	if level != "" {
		if parsed, err := logrus.ParseLevel(level); err == nil {
			log.SetLevel(parsed)
		} else {
			log.Warnf("Unknown log level %q, keeping %s", level, log.GetLevel())
		}
	}
}

// Get returns the underlying logger, for middleware and the GORM bridge.
func Get() *logrus.Logger {
	return log
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return log.WithFields(fields)
}

func Info(args ...interface{}) {
	log.Info(args...)
}

func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func Error(args ...interface{}) {
	log.Error(args...)
}

func Debug(args ...interface{}) {
	log.Debug(args...)
}

func Warn(args ...interface{}) {
	log.Warn(args...)
}

func Fatal(args ...interface{}) {
	log.Fatal(args...)
}
