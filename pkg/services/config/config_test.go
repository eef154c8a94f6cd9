package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// matching the behavior of testing.T.Chdir (added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad(t *testing.T) {
	t.Run("explicit config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "retail-atlas.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"data_path: /srv/data/superstore.csv\nserver_addr: 0.0.0.0:9090\ntop_customers: 10\n",
		), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/srv/data/superstore.csv", cfg.DataPath)
		assert.Equal(t, "0.0.0.0:9090", cfg.ServerAddr)
		assert.Equal(t, 10, cfg.TopCustomers)
	})

	t.Run("missing optional config falls back to defaults", func(t *testing.T) {
		chdir(t, t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Empty(t, cfg.DataPath)
		assert.Empty(t, cfg.ServerAddr)
		assert.Equal(t, 5, cfg.TopCustomers)
	})

	t.Run("discovered config in the working directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "retail-atlas.yaml"),
			[]byte("top_customers: 3\n"), 0o644))
		chdir(t, dir)

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.TopCustomers)
	})

	t.Run("error - explicit path does not exist", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
