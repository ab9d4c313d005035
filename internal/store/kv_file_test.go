package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKeyValue_SetGetAndReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "vault.json")

	kv, err := NewFileKeyValue(path, logger.Nop())
	require.NoError(t, err)

	_, err = kv.Get(ctx, "passwords")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, "passwords", "[1]"))
	require.NoError(t, kv.Set(ctx, "passwords", "[2]"))

	v, err := kv.Get(ctx, "passwords")
	require.NoError(t, err)
	assert.Equal(t, "[2]", v)

	reopened, err := NewFileKeyValue(path, logger.Nop())
	require.NoError(t, err)
	v, err = reopened.Get(ctx, "passwords")
	require.NoError(t, err)
	assert.Equal(t, "[2]", v)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileKeyValue_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	kv, err := NewFileKeyValue(path, logger.Nop())
	require.NoError(t, err)

	_, err = kv.Get(context.Background(), "passwords")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(context.Background(), "passwords", "[]"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"passwords": "[]"`)
}

func TestFileKeyValue_FailedWriteKeepsPreviousValue(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	// parent of the path is a regular file, so persisting must fail
	kv := &fileKeyValue{path: filepath.Join(blocker, "vault.json"), logger: logger.Nop(), items: map[string]string{"k": "old"}}

	err := kv.Set(context.Background(), "k", "new")
	require.Error(t, err)

	v, err := kv.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "old", v)
}

func TestMemoryKeyValue(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValue()

	require.NoError(t, kv.Set(ctx, "a", "1"))
	v, err := kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
	assert.NoError(t, kv.Close())
}

func TestNewFileKeyValue_EmptyPathIsMemory(t *testing.T) {
	kv, err := NewFileKeyValue("", logger.Nop())
	require.NoError(t, err)
	assert.True(t, kv.(*fileKeyValue).inMemory)
}
