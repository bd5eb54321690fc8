// Package config gathers the settings of a run from flags, the environment,
// an optional .env file and an optional config.yaml in the home directory.
//
// Precedence, highest first: flags set on the command line, environment
// variables, config.yaml, defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix       = "UNIQUOTE"
	DefaultNetwork  = "mainnet"
	DefaultEnvFile  = ".env"
	configFileName  = "config.yaml"
	defaultHomeName = ".uniquote"
)

type Config struct {
	Network  string
	Verbose  bool
	Provider string
	EnvFile  string
	HomeDir  string
}

func (c Config) NetworksDir() string {
	return filepath.Join(c.HomeDir, "networks")
}

// TokensFile is the user token table of network.
func (c Config) TokensFile(network string) string {
	return filepath.Join(c.HomeDir, "tokens", network+".json")
}

func (c Config) CachePath() string {
	return filepath.Join(c.HomeDir, "cache.json")
}

// AddFlags registers the global flags Load reads.
func AddFlags(fs *pflag.FlagSet) {
	fs.BoolP("verbose", "v", false, "Print diagnostics to stderr.")
	fs.StringP("network", "k", DefaultNetwork, "Network to query, see `network list`.")
	fs.String("provider", "", "Extra node url used next to the network's nodes. Also read from PROVIDER.")
	fs.String("env-file", DefaultEnvFile, "Env file loaded before reading the environment. A missing file is ignored.")
}

// Load builds the Config of the run. Variables of the env file never
// override variables already in the environment.
func Load(flags *pflag.FlagSet) (Config, error) {
	envFile := DefaultEnvFile
	if f := flags.Lookup("env-file"); f != nil {
		envFile = f.Value.String()
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if err := v.BindEnv("provider", "PROVIDER"); err != nil {
		return Config{}, err
	}
	v.SetDefault("network", DefaultNetwork)
	for _, name := range []string{"network", "verbose", "provider"} {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(name, f); err != nil {
				return Config{}, err
			}
		}
	}

	home := v.GetString("home")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("couldn't find the home directory: %w", err)
		}
		home = filepath.Join(userHome, defaultHomeName)
	}

	configFile := filepath.Join(home, configFileName)
	if _, err := os.Stat(configFile); err == nil {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read %s: %w", configFile, err)
		}
	}

	return Config{
		Network:  v.GetString("network"),
		Verbose:  v.GetBool("verbose"),
		Provider: v.GetString("provider"),
		EnvFile:  envFile,
		HomeDir:  home,
	}, nil
}
