package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// isolate points the home directory to a temp dir and clears the variables
// Load reads. The original values are restored when the test ends.
func isolate(t *testing.T) string {
	home := t.TempDir()
	t.Setenv("UNIQUOTE_HOME", home)
	for _, name := range []string{"PROVIDER", "UNIQUOTE_NETWORK", "UNIQUOTE_VERBOSE"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	return home
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)
	cfg, err := Load(newFlags(t, "--env-file", filepath.Join(home, "missing.env")))
	require.NoError(t, err)
	require.Equal(t, DefaultNetwork, cfg.Network)
	require.False(t, cfg.Verbose)
	require.Empty(t, cfg.Provider)
	require.Equal(t, home, cfg.HomeDir)
	require.Equal(t, filepath.Join(home, "tokens", "bsc.json"), cfg.TokensFile("bsc"))
	require.Equal(t, filepath.Join(home, "cache.json"), cfg.CachePath())
	require.Equal(t, filepath.Join(home, "networks"), cfg.NetworksDir())
}

func TestLoadEnvFile(t *testing.T) {
	home := isolate(t)
	envFile := filepath.Join(home, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("PROVIDER=https://node.example\nUNIQUOTE_NETWORK=bsc\n"), 0o644))

	cfg, err := Load(newFlags(t, "--env-file", envFile))
	require.NoError(t, err)
	require.Equal(t, "https://node.example", cfg.Provider)
	require.Equal(t, "bsc", cfg.Network)
}

func TestFlagsWinOverEnvironment(t *testing.T) {
	home := isolate(t)
	t.Setenv("UNIQUOTE_NETWORK", "bsc")

	cfg, err := Load(newFlags(t, "-k", "polygon", "-v", "--env-file", filepath.Join(home, "none")))
	require.NoError(t, err)
	require.Equal(t, "polygon", cfg.Network)
	require.True(t, cfg.Verbose)

	t.Setenv("PROVIDER", "https://env.example")
	cfg, err = Load(newFlags(t, "--provider", "https://flag.example", "--env-file", filepath.Join(home, "none")))
	require.NoError(t, err)
	require.Equal(t, "https://flag.example", cfg.Provider)
}

func TestLoadConfigFile(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("network: polygon\nprovider: https://cfg.example\n"), 0o644))

	cfg, err := Load(newFlags(t, "--env-file", filepath.Join(home, "none")))
	require.NoError(t, err)
	require.Equal(t, "polygon", cfg.Network)
	require.Equal(t, "https://cfg.example", cfg.Provider)

	// the environment wins over the file
	t.Setenv("PROVIDER", "https://env.example")
	cfg, err = Load(newFlags(t, "--env-file", filepath.Join(home, "none")))
	require.NoError(t, err)
	require.Equal(t, "https://env.example", cfg.Provider)
}
