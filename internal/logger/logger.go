package logger

import (
	"sync"

	"nextflix/internal/config"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

func Init() {
	logger = logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(config.GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

func Get() *logrus.Logger {
	once.Do(func() {
		if logger == nil {
			Init()
		}
	})
	return logger
}
