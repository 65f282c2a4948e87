package kv

import (
	"context"
	"sync"
)

// MemoryStore хранилище в памяти процесса. Данные не переживают перезапуск.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryStore создает пустое хранилище в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable("Get", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return copyBytes(value), nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return unavailable("Set", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = copyBytes(value)
	return nil
}

// Update держит блокировку на всё время чтения-изменения-записи
func (s *MemoryStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	if err := ctx.Err(); err != nil {
		return unavailable("Update", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var current []byte
	if value, ok := s.data[key]; ok {
		current = copyBytes(value)
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	// Запрос мог быть отменён, пока выполнялась fn: ничего не пишем
	if err := ctx.Err(); err != nil {
		return unavailable("Update", err)
	}

	s.data[key] = copyBytes(next)
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Kind() string {
	return "memory"
}

func (s *MemoryStore) Close() error {
	return nil
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
