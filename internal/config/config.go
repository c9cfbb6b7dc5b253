// Package config loads larapath settings from .larapath.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/abdul-hamid-achik/larapath/pkg/scanner"
	"github.com/spf13/viper"
)

// DefaultFile is the config file written when none exists yet.
const DefaultFile = ".larapath.yaml"

// Defaults
const (
	DefaultRoutesDir = "routes"
	DefaultDebounce  = 500 * time.Millisecond
)

// Config holds larapath settings.
type Config struct {
	// Enabled controls whether annotations are shown at all
	Enabled bool
	// RoutesDir is the directory scanned for route files
	RoutesDir string
	// Debounce is how long watch waits after the last change to a file
	Debounce time.Duration
	// Prefixes are user rules consulted before the built-in ones
	Prefixes scanner.PrefixRules
	// File is the config file that was read, empty if none was found
	File string
}

// prefixRule is the on-disk shape of a scanner.PrefixRule.
type prefixRule struct {
	Contains string `mapstructure:"contains"`
	Global   string `mapstructure:"global"`
	File     string `mapstructure:"file"`
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".larapath")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("LARAPATH")
	v.AutomaticEnv()

	v.SetDefault("enabled", true)
	v.SetDefault("routes_dir", DefaultRoutesDir)
	v.SetDefault("debounce", DefaultDebounce.String())

	return v
}

// readConfig reads the config file, treating a missing file as empty.
func readConfig(v *viper.Viper) (found bool, err error) {
	err = v.ReadInConfig()
	if err == nil {
		return true, nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Load reads the config at path, or .larapath.yaml in the working
// directory when path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	v := newViper(path)
	found, err := readConfig(v)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var rules []prefixRule
	if err := v.UnmarshalKey("prefixes", &rules); err != nil {
		return nil, fmt.Errorf("invalid prefixes: %w", err)
	}

	cfg := &Config{
		Enabled:   v.GetBool("enabled"),
		RoutesDir: v.GetString("routes_dir"),
		Debounce:  v.GetDuration("debounce"),
	}
	if found {
		cfg.File = v.ConfigFileUsed()
	}

	for _, r := range rules {
		if r.Contains == "" {
			return nil, fmt.Errorf("invalid prefixes: rule without contains")
		}
		cfg.Prefixes = append(cfg.Prefixes, scanner.PrefixRule{
			Contains: r.Contains,
			Global:   r.Global,
			File:     r.File,
		})
	}

	if cfg.RoutesDir == "" {
		cfg.RoutesDir = DefaultRoutesDir
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}

	return cfg, nil
}

// Rules returns the user prefix rules followed by the built-in ones.
func (c *Config) Rules() scanner.PrefixRules {
	return c.Prefixes.WithDefaults()
}

// Exists reports whether the config at path (or the default location)
// is present on disk.
func Exists(path string) bool {
	found, err := readConfig(newViper(path))
	return found && err == nil
}

// SetEnabled persists the enabled flag and returns the file written. The
// keys already in the file are kept; defaults and LARAPATH_* environment
// values are not written.
func SetEnabled(path string, enabled bool) (string, error) {
	v := newViper(path)
	found, err := readConfig(v)
	if err != nil {
		return "", fmt.Errorf("failed to read config: %w", err)
	}

	target := path
	if found {
		target = v.ConfigFileUsed()
	}
	if target == "" {
		target = DefaultFile
	}

	// A bare viper holds only what the file itself declares.
	file := viper.New()
	file.SetConfigType("yaml")
	if found {
		file.SetConfigFile(target)
		if err := file.ReadInConfig(); err != nil {
			return "", fmt.Errorf("failed to read config: %w", err)
		}
	}
	file.Set("enabled", enabled)

	if err := file.WriteConfigAs(target); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return target, nil
}
