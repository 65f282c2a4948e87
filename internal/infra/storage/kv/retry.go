package kv

import (
	"context"
	"math/rand/v2"
	"time"
)

// retryBaseDelay шаг случайной паузы между попытками оптимистичной транзакции
const retryBaseDelay = 2 * time.Millisecond

// pauseBeforeRetry ждёт случайное время от 0 до attempt*retryBaseDelay.
// Возвращает ошибку контекста, если он завершился раньше.
func pauseBeforeRetry(ctx context.Context, attempt int) error {
	if attempt < 1 {
		attempt = 1
	}
	timer := time.NewTimer(rand.N(time.Duration(attempt) * retryBaseDelay))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
