package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"csub/internal/driver"
)

const configFileName = "csub.toml"

type diagnosticsConfig struct {
	Max         *int   `toml:"max"`
	Color       string `toml:"color"`
	Format      string `toml:"format"`
	StopOnError *bool  `toml:"stop_on_error"`
}

type scanConfig struct {
	Jobs       int      `toml:"jobs"`
	Extensions []string `toml:"extensions"`
}

type cacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type fileConfig struct {
	Diagnostics diagnosticsConfig `toml:"diagnostics"`
	Scan        scanConfig        `toml:"scan"`
	Cache       cacheConfig       `toml:"cache"`
}

// settings: итоговые значения: флаги поверх csub.toml поверх умолчаний.
type settings struct {
	configPath     string
	maxDiagnostics int
	color          string
	format         string
	stopOnError    bool
	timings        bool
	jobs           int
	extensions     []string
	cacheEnabled   bool
	cacheDir       string
}

func defaultSettings() settings {
	return settings{
		maxDiagnostics: 100,
		color:          "auto",
		format:         "pretty",
		extensions:     slices.Clone(driver.DefaultExtensions),
	}
}

// findConfig ищет csub.toml, поднимаясь от startDir к корню.
func findConfig(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		st, err := os.Stat(candidate)
		if err == nil && !st.IsDir() {
			return candidate, true, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", false, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

func loadConfigFile(path string) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return cfg, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func (s *settings) applyFile(cfg fileConfig) error {
	d := cfg.Diagnostics
	if d.Max != nil {
		if *d.Max < 0 {
			return fmt.Errorf("diagnostics.max must be >= 0, got %d", *d.Max)
		}
		s.maxDiagnostics = *d.Max
	}
	if d.Color != "" {
		s.color = d.Color
	}
	if d.Format != "" {
		s.format = d.Format
	}
	if d.StopOnError != nil {
		s.stopOnError = *d.StopOnError
	}
	if cfg.Scan.Jobs < 0 {
		return fmt.Errorf("scan.jobs must be >= 0, got %d", cfg.Scan.Jobs)
	}
	s.jobs = cfg.Scan.Jobs
	if len(cfg.Scan.Extensions) > 0 {
		s.extensions = cfg.Scan.Extensions
	}
	s.cacheEnabled = cfg.Cache.Enabled
	s.cacheDir = cfg.Cache.Dir
	return nil
}

// resolveSettings собирает настройки для команды: csub.toml (если найден),
// затем явно заданные флаги.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	s := defaultSettings()
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return s, fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return s, err
		}
		found, ok, err := findConfig(wd)
		if err != nil {
			return s, fmt.Errorf("config lookup: %w", err)
		}
		if ok {
			configPath = found
		}
	}
	if configPath != "" {
		cfg, err := loadConfigFile(configPath)
		if err != nil {
			return s, err
		}
		if err := s.applyFile(cfg); err != nil {
			return s, fmt.Errorf("%s: %w", configPath, err)
		}
		s.configPath = configPath
	}

	if flags.Changed("max-diagnostics") {
		if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return s, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if flags.Changed("color") {
		if s.color, err = flags.GetString("color"); err != nil {
			return s, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if flags.Changed("stop-on-error") {
		if s.stopOnError, err = flags.GetBool("stop-on-error"); err != nil {
			return s, fmt.Errorf("failed to get stop-on-error flag: %w", err)
		}
	}
	if flags.Changed("cache") {
		if s.cacheEnabled, err = flags.GetBool("cache"); err != nil {
			return s, fmt.Errorf("failed to get cache flag: %w", err)
		}
	}
	if flags.Changed("cache-dir") {
		if s.cacheDir, err = flags.GetString("cache-dir"); err != nil {
			return s, fmt.Errorf("failed to get cache-dir flag: %w", err)
		}
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		if s.format, err = flags.GetString("format"); err != nil {
			return s, fmt.Errorf("failed to get format flag: %w", err)
		}
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		if s.jobs, err = flags.GetInt("jobs"); err != nil {
			return s, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return s, fmt.Errorf("failed to get timings flag: %w", err)
	}

	if s.maxDiagnostics < 0 {
		return s, fmt.Errorf("--max-diagnostics must be >= 0")
	}
	if _, err := parseSwitch("color", s.color); err != nil {
		return s, err
	}
	return s, nil
}

// driverOptions строит опции driver из настроек; кеш открывается только если включён.
func (s settings) driverOptions() (driver.Options, error) {
	opts := driver.Options{
		MaxDiagnostics: s.maxDiagnostics,
		StopOnError:    s.stopOnError,
		Progress:       countingSink{},
	}
	if s.cacheEnabled {
		cache, err := driver.OpenDiskCache(s.cacheDir)
		if err != nil {
			return opts, err
		}
		opts.Cache = cache
	}
	return opts, nil
}
