package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gookit/validate"
	"github.com/spf13/viper"
)

const (
	DefaultTransliterateDebounce = 800 * time.Millisecond
	DefaultCacheSizeMB           = 1
)

type Config struct {
	DataDir               string
	DBPath                string
	LogFile               string
	LogLevel              string
	Location              *time.Location
	TransliterateDebounce time.Duration
	CacheSizeMB           int
	PluginManifest        string
}

// fileConfig is the user-editable part of Config, read from config.yaml and
// JAPA_* environment variables.
type fileConfig struct {
	LogLevel              string        `mapstructure:"logLevel" validate:"required|in:trace,debug,info,warn,error"`
	Timezone              string        `mapstructure:"timezone"`
	TransliterateDebounce time.Duration `mapstructure:"transliterateDebounce" validate:"min:0"`
	CacheSizeMB           int           `mapstructure:"cacheSizeMB" validate:"min:0|max:1024"`
	PluginManifest        string        `mapstructure:"pluginManifest"`
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	stateDir := filepath.Join(dataDir, ".japa")

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("logLevel", "info")
	v.SetDefault("timezone", "")
	v.SetDefault("transliterateDebounce", DefaultTransliterateDebounce)
	v.SetDefault("cacheSizeMB", DefaultCacheSizeMB)
	v.SetDefault("pluginManifest", filepath.Join("plugins", "plugins.json"))
	_ = v.BindEnv("logLevel", "JAPA_LOG_LEVEL")
	_ = v.BindEnv("timezone", "JAPA_TIMEZONE")
	_ = v.BindEnv("transliterateDebounce", "JAPA_TRANSLITERATE_DEBOUNCE")
	_ = v.BindEnv("cacheSizeMB", "JAPA_CACHE_SIZE_MB")
	_ = v.BindEnv("pluginManifest", "JAPA_PLUGIN_MANIFEST")

	path := filepath.Join(dataDir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	raw := fileConfig{}
	if err := v.Unmarshal(&raw); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	raw.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	if vd := validate.Struct(&raw); !vd.Validate() {
		return Config{}, fmt.Errorf("invalid config: %s", vd.Errors.One())
	}

	loc := time.Local
	if raw.Timezone != "" {
		l, err := time.LoadLocation(raw.Timezone)
		if err != nil {
			return Config{}, fmt.Errorf("invalid config: timezone %q: %w", raw.Timezone, err)
		}
		loc = l
	}
	manifest := raw.PluginManifest
	if !filepath.IsAbs(manifest) {
		manifest = filepath.Join(dataDir, manifest)
	}

	return Config{
		DataDir:               dataDir,
		DBPath:                filepath.Join(stateDir, "japa.db"),
		LogFile:               filepath.Join(stateDir, "japa.log"),
		LogLevel:              raw.LogLevel,
		Location:              loc,
		TransliterateDebounce: raw.TransliterateDebounce,
		CacheSizeMB:           raw.CacheSizeMB,
		PluginManifest:        manifest,
	}, nil
}
