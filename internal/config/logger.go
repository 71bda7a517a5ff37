package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

func GetLogger() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stdout)
}

// ConfigureLogger adjusts the global logger for the running environment
func ConfigureLogger(cfg *AppConfig) {
	if cfg.Debug {
		logg.SetLevel(logrus.DebugLevel)
	}
	if cfg.Env == "production" {
		logg.SetLevel(logrus.InfoLevel)
	}
}
