package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/Oasis-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/Oasis-BookingService/pkg/txmanager"
)

const (
	kvTable = "kv_entries"

	// SQLSTATE serialization_failure
	pqSerializationFailure = "40001"
)

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// PostgresStore хранилище поверх таблицы kv_entries.
// Update выполняется в сериализуемой транзакции с блокировкой строки (FOR UPDATE).
type PostgresStore struct {
	db         *sql.DB
	txManager  TransactionManager
	maxRetries int
}

// NewPostgresStore создает хранилище поверх открытого *sql.DB
func NewPostgresStore(db *sql.DB, txManager TransactionManager, maxRetries int) *PostgresStore {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &PostgresStore{db: db, txManager: txManager, maxRetries: maxRetries}
}

// EnsureSchema создает таблицу, если её нет
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+kvTable+` (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`)
	if err != nil {
		return unavailable("EnsureSchema", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.get(ctx, key, false)
}

func (s *PostgresStore) get(ctx context.Context, key string, forUpdate bool) ([]byte, error) {
	executor := txmanager.GetExecutor(ctx, s.db)

	selectBuilder := psqlbuilder.Select("value").
		From(kvTable).
		Where(squirrel.Eq{"key": key})
	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrUnavailable, err)
	}

	var value []byte
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, unavailable("Get", err)
	}

	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	executor := txmanager.GetExecutor(ctx, s.db)

	query, args, err := psqlbuilder.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, string(value), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrUnavailable, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return unavailable("Set", err)
	}

	return nil
}

func (s *PostgresStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			current, err := s.get(txCtx, key, true)
			if err != nil && !errors.Is(err, ErrNotFound) {
				return err
			}

			next, err := fn(current)
			if err != nil {
				return &callbackError{err: err}
			}

			return s.Set(txCtx, key, next)
		})
		if err == nil {
			return nil
		}

		if cbErr, ok := asCallbackError(err); ok {
			return cbErr.err
		}
		// Конкурентная вставка отсутствующего ключа откатывается с serialization_failure
		if isSerializationFailure(err) {
			if attempt+1 < s.maxRetries {
				if err := pauseBeforeRetry(ctx, attempt+1); err != nil {
					return unavailable("Update", err)
				}
			}
			continue
		}
		if errors.Is(err, ErrUnavailable) {
			return err
		}
		return unavailable("Update", err)
	}

	return fmt.Errorf("%w: Update - key=%s after %d attempts", ErrConcurrentModification, key, s.maxRetries)
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqSerializationFailure
	}
	return false
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return unavailable("Ping", err)
	}
	return nil
}

func (s *PostgresStore) Kind() string {
	return "postgres"
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
