package wavelink_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavelink-audio/wavelink-go/pkg/wavelink"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wavelink.toml")
	doc := `
library_paths = ["/opt/wavelink/lib", "/usr/local/lib/libwavelink.so.12"]
library_names = ["libwavelink-vendor.so"]
trace = true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := wavelink.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/opt/wavelink/lib", "/usr/local/lib/libwavelink.so.12"}, cfg.LibraryPaths)
	assert.Equal(t, []string{"libwavelink-vendor.so"}, cfg.LibraryNames)
	assert.True(t, cfg.Trace)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := wavelink.LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigRejectsMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wavelink.toml")
	require.NoError(t, os.WriteFile(path, []byte("library_paths = 7"), 0o600))

	_, err := wavelink.LoadConfig(path)
	assert.Error(t, err)
}
