package kv

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T, maxRetries int) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	s := NewRedisStoreWithClient(client, maxRetries)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestRedisStore_GetSet(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisStore(t, 0)

	_, err := s.Get(ctx, "oasis:bookings")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "oasis:bookings", []byte(`[]`)))
	value, err := s.Get(ctx, "oasis:bookings")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(value))
	mr.CheckGet(t, "oasis:bookings", `[]`)

	require.NoError(t, s.Ping(ctx))
	assert.Equal(t, "redis", s.Kind())
}

func TestRedisStore_UpdateCreatesKey(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisStore(t, 0)

	err := s.Update(ctx, "oasis:settings", func(cur []byte) ([]byte, error) {
		assert.Nil(t, cur)
		return []byte(`{"slotDuration":60}`), nil
	})
	require.NoError(t, err)
	mr.CheckGet(t, "oasis:settings", `{"slotDuration":60}`)
}

func TestRedisStore_UpdateCallbackError(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisStore(t, 0)
	require.NoError(t, mr.Set("k", "1"))

	errTaken := errors.New("taken")
	err := s.Update(ctx, "k", func(cur []byte) ([]byte, error) {
		return nil, errTaken
	})
	assert.ErrorIs(t, err, errTaken)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrConcurrentModification)
	mr.CheckGet(t, "k", "1")
}

func TestRedisStore_ConcurrentUpdatesAllApplied(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisStore(t, 100)

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.Update(ctx, "counter", func(cur []byte) ([]byte, error) {
				n := 0
				if cur != nil {
					var err error
					if n, err = strconv.Atoi(string(cur)); err != nil {
						return nil, err
					}
				}
				return []byte(strconv.Itoa(n + 1)), nil
			})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	mr.CheckGet(t, "counter", strconv.Itoa(workers))
}

func TestRedisStore_ConcurrentClaimSingleWinner(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisStore(t, 100)

	errTaken := errors.New("slot taken")
	const workers = 10

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		won    []string
		others int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			err := s.Update(ctx, "oasis:slot:2026-10-19:10:00 AM", func(cur []byte) ([]byte, error) {
				if cur != nil {
					return nil, errTaken
				}
				return []byte(id), nil
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				won = append(won, id)
			case errors.Is(err, errTaken):
				others++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}("client-" + strconv.Itoa(i))
	}
	wg.Wait()

	require.Len(t, won, 1)
	assert.Equal(t, workers-1, others)
	mr.CheckGet(t, "oasis:slot:2026-10-19:10:00 AM", won[0])
}

func TestRedisStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisStore(t, 0)
	mr.Close()

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrUnavailable)

	err = s.Update(ctx, "k", func(cur []byte) ([]byte, error) {
		return []byte("v"), nil
	})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, s.Ping(ctx), ErrUnavailable)
}
