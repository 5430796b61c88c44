package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend(t *testing.T) {
	dir := t.TempDir()

	backend, err := NewFileBackend(dir)
	require.NoError(t, err)

	t.Run("Missing Key", func(t *testing.T) {
		_, err := backend.Get("riders")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("Roundtrip", func(t *testing.T) {
		payload := []byte(`[{"id":101}]`)
		require.NoError(t, backend.Set("riders", payload))

		got, err := backend.Get("riders")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, backend.Set("riders", []byte(`[]`)))

		got, err := backend.Get("riders")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), got)
	})

	t.Run("No Temp File Left Behind", func(t *testing.T) {
		require.NoError(t, backend.Set("companies", []byte(`[]`)))

		_, err := os.Stat(filepath.Join(dir, "companies.json.tmp"))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestMemoryBackend(t *testing.T) {
	backend := NewMemoryBackend()

	t.Run("Missing Key", func(t *testing.T) {
		_, err := backend.Get("drivers")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("Roundtrip", func(t *testing.T) {
		require.NoError(t, backend.Set("drivers", []byte(`[{"id":201}]`)))

		got, err := backend.Get("drivers")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[{"id":201}]`), got)
	})

	t.Run("Stored Payload Is Isolated", func(t *testing.T) {
		payload := []byte(`[1]`)
		require.NoError(t, backend.Set("audit_log", payload))

		payload[1] = '9'

		got, err := backend.Get("audit_log")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[1]`), got)
	})
}
