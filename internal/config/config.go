// Package config loads the runtime configuration from a config file and
// DEVFOLIO_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the site binary.
type Config struct {
	// Port the HTTP server listens on.
	Port int `mapstructure:"port"`
	// BaseURL is the public origin of the site, used in exported pages.
	BaseURL string `mapstructure:"baseURL"`
	// ContentDir optionally overrides the embedded content with a directory
	// containing site.yaml and blogs/. Empty means embedded content only.
	ContentDir string `mapstructure:"contentDir"`
	// OutputDir is where the build command writes the static site.
	OutputDir string `mapstructure:"outputDir"`
	// ArticlesBaseURL, when set, makes the server fetch article markdown
	// from a remote origin over HTTP instead of the content filesystem.
	ArticlesBaseURL string `mapstructure:"articlesBaseURL"`
	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `mapstructure:"logLevel"`
	// CORSAllowedOrigins applies to the /blogs/ markdown endpoint so a
	// separately hosted frontend can fetch articles.
	CORSAllowedOrigins []string `mapstructure:"corsAllowedOrigins"`
}

// Load reads configuration from cfgFile, or from ./config.yaml when
// cfgFile is empty. A missing default file is not an error; defaults and
// environment variables still apply.
func Load(cfgFile string) (Config, error) {
	v := viper.New()

	v.SetDefault("port", 8080)
	v.SetDefault("baseURL", "")
	v.SetDefault("contentDir", "")
	v.SetDefault("outputDir", "public")
	v.SetDefault("articlesBaseURL", "")
	v.SetDefault("logLevel", "info")
	v.SetDefault("corsAllowedOrigins", []string{"*"})

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("DEVFOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if cfgFile != "" {
			return Config{}, fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
		// No config file: defaults plus environment variables.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	return cfg, nil
}
