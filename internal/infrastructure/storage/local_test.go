package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_SaveYRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads/comprobantes/")
	require.NoError(t, err)

	publicPath, err := store.Save("voucher yape.jpg", strings.NewReader("contenido"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(publicPath, "/uploads/comprobantes/"))
	assert.True(t, strings.HasSuffix(publicPath, "voucher_yape.jpg"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "contenido", string(data))

	require.NoError(t, store.Remove(publicPath))
	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// Un nombre con componentes de ruta no puede escapar del directorio.
func TestLocalStore_NombreConRuta(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads/comprobantes")
	require.NoError(t, err)

	publicPath, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, publicPath, "..")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestLocalStore_RemoveInexistente(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads/comprobantes")
	require.NoError(t, err)

	assert.Error(t, store.Remove("/uploads/comprobantes/no-existe.jpg"))
}
