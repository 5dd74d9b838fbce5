package infra

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTempStoreCreatesRoot(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "nested", "whisper_api")
	store, err := NewTempStore(root)
	require.NoError(t, err)
	require.Equal(t, root, store.Root())

	info, err := os.Stat(root)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestTempStoreSaveAndRemove(t *testing.T) {
	t.Parallel()

	store, err := NewTempStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save(bytes.NewReader([]byte("audio bytes")), ".mp3")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, store.Root()))
	require.Equal(t, ".mp3", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("audio bytes"), data)

	require.NoError(t, store.Remove(path))
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))

	// повторное удаление не ошибка
	require.NoError(t, store.Remove(path))
}

func TestTempStoreUniqueNames(t *testing.T) {
	t.Parallel()

	store, err := NewTempStore(t.TempDir())
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		path, err := store.Save(bytes.NewReader([]byte("x")), ".wav")
		require.NoError(t, err)
		require.False(t, seen[path])
		seen[path] = true
	}
}
