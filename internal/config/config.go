package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the tool configuration.
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger"`
	Report  ReportConfig  `mapstructure:"report"`
	Convert ConvertConfig `mapstructure:"convert"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// ReportConfig lists the substrings reported after a conversion.
type ReportConfig struct {
	TrackedURLs     []string `mapstructure:"tracked_urls"`
	TrackedKeywords []string `mapstructure:"tracked_keywords"`
}

type ConvertConfig struct {
	// PurposeCountries are the country codes whose purpose fragment is filtered by purpose.
	PurposeCountries []string `mapstructure:"purpose_countries"`
	// OutputSuffix replaces ".html" in the output file name.
	OutputSuffix string `mapstructure:"output_suffix"`
}

// EnvPrefix prefixes environment overrides, e.g. SFMCCONV_LOGGER_LEVEL.
const EnvPrefix = "SFMCCONV"

// Load reads configuration from path, or from sfmcconv.{yaml,toml} in the
// working directory or ./configs when path is empty. A missing default file
// is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("sfmcconv")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when no file or environment override is present.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults are plain values, decoding them cannot fail.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stderr")

	v.SetDefault("report.tracked_urls", []string{"https://t.enews.myrenault.fr", "images/"})
	v.SetDefault("report.tracked_keywords", []string{"targetData", "recipient."})

	v.SetDefault("convert.purpose_countries", []string{"PRT"})
	v.SetDefault("convert.output_suffix", "_updated.html")
}
