package logger

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	Log *logrus.Logger

	fallbackOnce sync.Once
	fallback     *logrus.Logger
)

// Init инициализирует структурированный логгер.
func Init(level string) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	// Используем JSON формат для production, text для development
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// SetTextFormatter устанавливает текстовый формат логов (для development).
func SetTextFormatter() {
	if Log != nil {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

// Get возвращает логгер приложения. До вызова Init (например, в тестах)
// отдаётся логгер по умолчанию, чтобы вызывающим не нужно было проверять nil.
func Get() *logrus.Logger {
	if Log != nil {
		return Log
	}
	fallbackOnce.Do(func() {
		fallback = logrus.New()
	})
	return fallback
}
