package kv

import (
	"context"
	"errors"
	"time"
)

// instrumentedStore сообщает длительность операций в Observer
type instrumentedStore struct {
	next     Store
	observer Observer
}

// Instrumented оборачивает store сбором метрик; nil observer отключает обёртку
func Instrumented(store Store, observer Observer) Store {
	if observer == nil {
		return store
	}
	return &instrumentedStore{next: store, observer: observer}
}

func (s *instrumentedStore) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	value, err := s.next.Get(ctx, key)
	// Отсутствие ключа не является сбоем хранилища
	observed := err
	if errors.Is(err, ErrNotFound) {
		observed = nil
	}
	s.observer.ObserveStorageOperation(s.next.Kind(), "get", time.Since(start), observed)
	return value, err
}

func (s *instrumentedStore) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := s.next.Set(ctx, key, value)
	s.observer.ObserveStorageOperation(s.next.Kind(), "set", time.Since(start), err)
	return err
}

func (s *instrumentedStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	start := time.Now()
	err := s.next.Update(ctx, key, fn)
	s.observer.ObserveStorageOperation(s.next.Kind(), "update", time.Since(start), storageFailure(err))
	return err
}

func (s *instrumentedStore) Ping(ctx context.Context) error {
	start := time.Now()
	err := s.next.Ping(ctx)
	s.observer.ObserveStorageOperation(s.next.Kind(), "ping", time.Since(start), err)
	return err
}

func (s *instrumentedStore) Kind() string {
	return s.next.Kind()
}

func (s *instrumentedStore) Close() error {
	return s.next.Close()
}

// storageFailure отбрасывает ошибки бизнес-логики, вернувшиеся из UpdateFunc
func storageFailure(err error) error {
	if errors.Is(err, ErrUnavailable) || errors.Is(err, ErrConcurrentModification) {
		return err
	}
	return nil
}
