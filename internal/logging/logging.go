package logging

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/okhmat/minesweeper-solver/internal/config"
)

// New builds the process logger: colored text on stderr, debug level in
// development, and a rotating JSON log file when LOG_FILE is set.
func New() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if config.Development() {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	if path, ok := os.LookupEnv("LOG_FILE"); ok {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   path,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logrus.InfoLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.WithError(err).Error("unable to attach rotating file hook")
		} else {
			log.AddHook(hook)
		}
	}

	return log
}
