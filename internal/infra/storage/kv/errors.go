package kv

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound возвращается, когда ключ отсутствует
	ErrNotFound = errors.New("kv: key not found")

	// ErrUnavailable возвращается, когда хранилище недоступно или не ответило вовремя
	ErrUnavailable = errors.New("kv: storage unavailable")

	// ErrConcurrentModification возвращается, когда оптимистичная транзакция исчерпала попытки
	ErrConcurrentModification = errors.New("kv: concurrent modification")
)

// callbackError помечает ошибку, вернувшуюся из UpdateFunc, чтобы не спутать её с ошибкой хранилища
type callbackError struct {
	err error
}

func (e *callbackError) Error() string {
	return e.err.Error()
}

func (e *callbackError) Unwrap() error {
	return e.err
}

// asCallbackError возвращает обёртку ошибки UpdateFunc, если err её несёт
func asCallbackError(err error) (*callbackError, bool) {
	var cbErr *callbackError
	if errors.As(err, &cbErr) {
		return cbErr, true
	}
	return nil, false
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
}
