package kv

import (
	"context"
	"errors"
	"time"
)

// timeoutStore ограничивает время каждой операции.
// Операция, не уложившаяся в таймаут, завершается ошибкой ErrUnavailable.
type timeoutStore struct {
	next    Store
	timeout time.Duration
}

// WithTimeout оборачивает store таймаутом на операцию; timeout <= 0 отключает обёртку
func WithTimeout(store Store, timeout time.Duration) Store {
	if timeout <= 0 {
		return store
	}
	return &timeoutStore{next: store, timeout: timeout}
}

func (s *timeoutStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	value, err := s.next.Get(ctx, key)
	return value, s.failClosed(ctx, "Get", err)
}

func (s *timeoutStore) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.failClosed(ctx, "Set", s.next.Set(ctx, key, value))
}

func (s *timeoutStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.failClosed(ctx, "Update", s.next.Update(ctx, key, fn))
}

func (s *timeoutStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.failClosed(ctx, "Ping", s.next.Ping(ctx))
}

func (s *timeoutStore) Kind() string {
	return s.next.Kind()
}

func (s *timeoutStore) Close() error {
	return s.next.Close()
}

func (s *timeoutStore) failClosed(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, ErrUnavailable) {
		return unavailable(op+" timed out", err)
	}
	return err
}
