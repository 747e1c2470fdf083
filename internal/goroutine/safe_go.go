package goroutine

import (
	"context"
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/listing-reviews/internal/logger"
)

// Logger интерфейс для логирования паник.
type Logger interface {
	WithFields(fields logrus.Fields) *logrus.Entry
}

// RecoveryHandler обрабатывает panic в горутинах
type RecoveryHandler struct {
	logger Logger
}

// NewRecoveryHandler создает новый обработчик
func NewRecoveryHandler(logger Logger) *RecoveryHandler {
	return &RecoveryHandler{logger: logger}
}

// SafeGo запускает горутину с обработкой panic
func (rh *RecoveryHandler) SafeGo(fn func()) {
	go func() {
		defer rh.recover()
		fn()
	}()
}

// SafeGoWithContext запускает горутину с контекстом и обработкой panic
func (rh *RecoveryHandler) SafeGoWithContext(ctx context.Context, fn func(context.Context)) {
	go func() {
		defer rh.recover()
		fn(ctx)
	}()
}

func (rh *RecoveryHandler) recover() {
	if r := recover(); r != nil {
		rh.logger.WithFields(logrus.Fields{
			"panic": r,
			"stack": string(debug.Stack()),
		}).Error("goroutine: panic recovered")
	}
}

// SafeGo запускает горутину через логгер приложения.
func SafeGo(fn func()) {
	NewRecoveryHandler(logger.Get()).SafeGo(fn)
}

// SafeGoWithContext - то же, что SafeGo, но с контекстом
func SafeGoWithContext(ctx context.Context, fn func(context.Context)) {
	NewRecoveryHandler(logger.Get()).SafeGoWithContext(ctx, fn)
}
