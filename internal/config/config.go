package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"showdown-server/internal/util"
)

// Config provides configuration for the showdown server and CLI
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
	Classify struct {
		// Workers is the number of hands classified at once, 0 is unlimited
		Workers int `yaml:"workers" envconfig:"workers"`
	} `yaml:"classify"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is provided
func DefaultConfig() Config {
	cfg := Config{}
	cfg.Log.Level = "info"
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.Classify.Workers = 4

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("SHOWDOWN_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("showdown", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
