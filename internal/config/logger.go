// internal/config/logger.go
package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// ConfigurarLogger ajusta o logger global: JSON para produção, nível vindo
// de LOG_LEVEL (padrão info).
func ConfigurarLogger() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	nivel, err := logrus.ParseLevel(Env("LOG_LEVEL", "info"))
	if err != nil {
		nivel = logrus.InfoLevel
	}
	logrus.SetLevel(nivel)
}
