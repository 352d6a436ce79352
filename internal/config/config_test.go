package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, ".cache"))
	t.Setenv("ENVINSTALL_CONFIG", "")
	for _, k := range []string{"ENVINSTALL_LOG_FILE", "ENVINSTALL_LOG_LEVEL", "ENVINSTALL_INSTALL_DRY_RUN", "ENVINSTALL_OS_FAMILY", "ENVINSTALL_REGISTRY_EXTRA", "ENVINSTALL_UI_PLAIN"} {
		os.Unsetenv(k)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DefaultLogFile(), cfg.Log.File)
	assert.False(t, cfg.Install.DryRun)
	assert.Equal(t, "auto", cfg.OS.Family)
	assert.Empty(t, cfg.Registry.Extra)
	assert.False(t, cfg.UI.Plain)
	assert.Empty(t, cfg.File)
}

func TestLoadFromDefaultLocation(t *testing.T) {
	isolate(t)
	path := filepath.Join(Dir(), "config.toml")
	writeFile(t, path, `
[log]
level = "debug"

[install]
dry_run = true

[registry]
extra = "~/extra.toml"
`)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Install.DryRun)
	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, "extra.toml"), cfg.Registry.Extra)
}

func TestPrecedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, `
[os]
family = "macos"

[ui]
plain = false
`)

	// env beats file
	t.Setenv("ENVINSTALL_OS_FAMILY", "linux")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("plain", false, "")
	flags.Bool("dry-run", false, "")
	flags.String("os", "auto", "")
	require.NoError(t, flags.Parse([]string{"--plain"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "linux", cfg.OS.Family)
	assert.True(t, cfg.UI.Plain, "explicit flag beats file")
	assert.False(t, cfg.Install.DryRun, "unset flag keeps default")

	// flag beats env
	require.NoError(t, flags.Parse([]string{"--os", "macos"}))
	cfg, err = Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "macos", cfg.OS.Family)
}

func TestConfigFromEnvVariable(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "from-env.toml")
	writeFile(t, path, "[log]\nlevel = \"warn\"\n")
	t.Setenv("ENVINSTALL_CONFIG", path)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.toml"), nil)
	require.Error(t, err, "an explicitly named file must exist")

	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, "[log\nlevel=")
	_, err = Load(bad, nil)
	require.Error(t, err)
}
