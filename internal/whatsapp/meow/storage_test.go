package meow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_Wipe(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "whatsapp")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, storeFile), []byte("keys"), 0o600))

	s := NewStorage(dir)
	require.NoError(t, s.Wipe())

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))

	// wiping twice is fine
	assert.NoError(t, s.Wipe())
}

func TestStorage_WipeRefusesRoot(t *testing.T) {
	assert.Error(t, NewStorage("").Wipe())
	assert.Error(t, NewStorage("/").Wipe())
}
