package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New создает логгер с заданным уровнем; format "text" включает человекочитаемый вывод,
// любое другое значение дает JSON
func New(logLevel, format string) *logrus.Logger {
	log := logrus.New()

	if strings.EqualFold(format, "text") {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	log.SetOutput(os.Stdout)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
