package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ardanlabs/conf"
	"gopkg.in/yaml.v2"
)

// WebAPIConfiguration describes the web API configuration. This structure is automatically parsed by
// loadConfiguration and values from flags, environment variables or the configuration file will be loaded.
type WebAPIConfiguration struct {
	Config struct {
		Path string `conf:"default:/conf/config.yml"`
	}
	Web struct {
		APIHost         string        `conf:"default:0.0.0.0:3000" yaml:"apiHost"`
		ReadTimeout     time.Duration `conf:"default:5s" yaml:"readTimeout"`
		WriteTimeout    time.Duration `conf:"default:5s" yaml:"writeTimeout"`
		ShutdownTimeout time.Duration `conf:"default:5s" yaml:"shutdownTimeout"`
	} `yaml:"web"`
	Debug bool `yaml:"debug"`
	DB    struct {
		// an empty filename keeps contents in memory only
		Filename      string        `conf:"default:/tmp/statuary.db" yaml:"filename"`
		FlushInterval time.Duration `conf:"default:30s" yaml:"flushInterval"`
	} `yaml:"db"`
}

// loadConfiguration creates a WebAPIConfiguration starting from flags, environment variables and configuration file.
// It works as follows: first it loads environment variables, then it parses flags (overriding env values) and finally,
// when a configuration file exists at Config.Path, its values override everything else.
func loadConfiguration() (WebAPIConfiguration, error) {
	var cfg WebAPIConfiguration

	// try to load configuration from environment variables and command line switches
	if err := conf.Parse(os.Args[1:], "CFG", &cfg); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			usage, err := conf.Usage("CFG", &cfg)
			if err != nil {
				return cfg, fmt.Errorf("generating config usage: %w", err)
			}
			fmt.Println(usage) //nolint:forbidigo
			return cfg, conf.ErrHelpWanted
		}
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	// override values from the YAML file if it exists, useful with containers
	fp, err := os.Open(cfg.Config.Path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("can't read the config file, while it exists: %w", err)
	} else if err == nil {
		defer fp.Close()
		yamlFile, err := io.ReadAll(fp)
		if err != nil {
			return cfg, fmt.Errorf("can't read config file: %w", err)
		}
		if err = yaml.Unmarshal(yamlFile, &cfg); err != nil {
			return cfg, fmt.Errorf("can't unmarshal config file: %w", err)
		}
	}

	if cfg.DB.FlushInterval <= 0 {
		return cfg, errors.New("the flush interval must be positive")
	}
	return cfg, nil
}
