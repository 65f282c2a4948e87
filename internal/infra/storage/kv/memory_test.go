package kv

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "oasis:bookings")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "oasis:bookings", []byte(`[]`)))
	value, err := s.Get(ctx, "oasis:bookings")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(value))
	assert.Equal(t, "memory", s.Kind())
}

func TestMemoryStore_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	original := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", original))
	original[0] = 'x'

	value, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(value))
}

func TestMemoryStore_UpdateCallbackErrorLeavesValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Set(ctx, "k", []byte("1")))

	errTaken := errors.New("taken")
	err := s.Update(ctx, "k", func(cur []byte) ([]byte, error) {
		return []byte("2"), errTaken
	})
	assert.ErrorIs(t, err, errTaken)

	value, _ := s.Get(ctx, "k")
	assert.Equal(t, "1", string(value))
}

func TestMemoryStore_UpdateAbsentKey(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	err := s.Update(ctx, "k", func(cur []byte) ([]byte, error) {
		assert.Nil(t, cur)
		return []byte("first"), nil
	})
	require.NoError(t, err)

	value, _ := s.Get(ctx, "k")
	assert.Equal(t, "first", string(value))
}

func TestMemoryStore_UpdateIsAtomic(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Set(ctx, "counter", []byte("0")))

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(ctx, "counter", func(cur []byte) ([]byte, error) {
				n, err := strconv.Atoi(string(cur))
				if err != nil {
					return nil, err
				}
				return []byte(strconv.Itoa(n + 1)), nil
			})
		}()
	}
	wg.Wait()

	value, _ := s.Get(ctx, "counter")
	assert.Equal(t, strconv.Itoa(workers), string(value))
}

func TestMemoryStore_CancelledContextFailsClosed(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Set(ctx, "k", []byte("v"))
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrNotFound)
}
