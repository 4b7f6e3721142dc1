package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggerConfig controls the CLI's zap logger.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // console or json
	LogFile    string `mapstructure:"log_file"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
}

// Config is the full CLI configuration, sourced from solsave.yaml and
// SOLSAVE_* environment variables. Flags override these values.
type Config struct {
	Logger          LoggerConfig `mapstructure:"logger"`
	IncludeDisabled bool         `mapstructure:"include_disabled"`
	ZlibLevel       int          `mapstructure:"zlib_level"`
}

// Load reads the configuration. A missing config file is not an error;
// defaults and environment variables still apply.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("solsave")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("SOLSAVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
