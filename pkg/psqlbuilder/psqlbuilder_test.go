package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_DollarPlaceholders(t *testing.T) {
	query, args, err := Select("value").
		From("kv_entries").
		Where(squirrel.Eq{"key": "oasis:bookings"}).
		Suffix("FOR UPDATE").
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT value FROM kv_entries WHERE key = $1 FOR UPDATE", query)
	assert.Equal(t, []interface{}{"oasis:bookings"}, args)
}

func TestInsert_Upsert(t *testing.T) {
	query, args, err := Insert("kv_entries").
		Columns("key", "value").
		Values("k", []byte("v")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO kv_entries (key,value) VALUES ($1,$2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value", query)
	assert.Len(t, args, 2)
}

func TestDelete(t *testing.T) {
	query, _, err := Delete("kv_entries").Where(squirrel.Eq{"key": "k"}).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM kv_entries WHERE key = $1", query)
}
