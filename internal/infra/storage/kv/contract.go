package kv

import (
	"context"
	"time"
)

// UpdateFunc получает текущее значение (nil, если ключа нет) и возвращает новое.
// Возврат ошибки отменяет запись, ошибка передаётся вызывающему без изменений.
// Функция может вызываться повторно при конфликте оптимистичной транзакции.
type UpdateFunc func(current []byte) ([]byte, error)

// Store key-value хранилище JSON документов
type Store interface {
	// Get возвращает значение ключа или ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// Set записывает значение ключа
	Set(ctx context.Context, key string, value []byte) error
	// Update атомарно выполняет чтение-изменение-запись одного ключа
	Update(ctx context.Context, key string, fn UpdateFunc) error
	// Ping проверяет доступность хранилища
	Ping(ctx context.Context) error
	// Kind название бэкенда: memory, redis, postgres
	Kind() string
	Close() error
}

// Observer получает длительность каждой операции хранилища
type Observer interface {
	ObserveStorageOperation(backend, operation string, duration time.Duration, err error)
}

// defaultMaxRetries число попыток оптимистичной транзакции по умолчанию
const defaultMaxRetries = 10
