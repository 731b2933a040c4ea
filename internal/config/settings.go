package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. DIVPROJ_LOGGING_LEVEL.
const EnvPrefix = "DIVPROJ"

// Settings holds runtime settings for the CLI and HTTP server. Scenario
// parameters live in the scenario file, not here.
type Settings struct {
	Logging LoggingSettings `mapstructure:"logging" yaml:"logging"`
	Output  OutputSettings  `mapstructure:"output"  yaml:"output"`
	Data    DataSettings    `mapstructure:"data"    yaml:"data"`
	API     APISettings     `mapstructure:"api"     yaml:"api"`
	Engine  EngineSettings  `mapstructure:"engine"  yaml:"engine"`
}

type LoggingSettings struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

type OutputSettings struct {
	Format    string `mapstructure:"format"    yaml:"format"`
	Directory string `mapstructure:"directory" yaml:"directory"`
}

type DataSettings struct {
	FundCatalog string `mapstructure:"fund_catalog" yaml:"fund_catalog"` // empty uses the bundled catalog
}

type APISettings struct {
	Addr        string   `mapstructure:"addr"         yaml:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
	CacheTTL    int      `mapstructure:"cache_ttl"    yaml:"cache_ttl"` // seconds
}

// CacheDuration returns the result cache TTL.
func (a APISettings) CacheDuration() time.Duration {
	return time.Duration(a.CacheTTL) * time.Second
}

type EngineSettings struct {
	MaxConcurrency int  `mapstructure:"max_concurrency" yaml:"max_concurrency"`
	Debug          bool `mapstructure:"debug"           yaml:"debug"`
}

// LoadSettings reads settings from path, or searches the default locations
// when path is empty:
//
//  1. ./divproj.yaml
//  2. ~/.divproj/divproj.yaml
//
// Environment variables override file values.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("divproj")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".divproj"))
		}
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading settings file: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error unmarshaling settings: %w", err)
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("output.format", "console")
	v.SetDefault("output.directory", "reports")

	v.SetDefault("data.fund_catalog", "")

	v.SetDefault("api.addr", ":8080")
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("api.cache_ttl", 300) // 5 minutes

	v.SetDefault("engine.max_concurrency", 8)
	v.SetDefault("engine.debug", false)
}
