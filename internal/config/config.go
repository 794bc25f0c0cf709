package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Logs    Logs    `yaml:"logs" mapstructure:"logs"`
	Metrics Metrics `yaml:"metrics" mapstructure:"metrics"`
}

type Logs struct {
	Level   string `yaml:"level" mapstructure:"level"`
	Format  string `yaml:"format" mapstructure:"format"`
	Backend string `yaml:"backend" mapstructure:"backend"` // zap or logrus
}

type Metrics struct {
	Enabled   bool   `yaml:"enabled" mapstructure:"enabled"`
	Namespace string `yaml:"namespace" mapstructure:"namespace"`
}

func Default() Config {
	return Config{
		Logs: Logs{
			Level:   "info",
			Format:  "console",
			Backend: "zap",
		},
		Metrics: Metrics{
			Namespace: "nascodec",
		},
	}
}

// Load reads the config at configPath over the defaults and applies overrides of the form
// "logs.level=debug". An empty path keeps the defaults.
func Load(configPath string, overrides []string) (Config, error) {
	cfg := Default()

	if configPath != "" {
		if err := readConfig(configPath, &cfg); err != nil {
			return cfg, fmt.Errorf("could not read config: %w", err)
		}
	}

	if err := applyOverrides(&cfg, overrides); err != nil {
		return cfg, fmt.Errorf("could not apply overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	setLogLevel(cfg)

	return cfg, nil
}

func readConfig(configPath string, cfg *Config) error {
	b, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("could not open config at %q: %w", configPath, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(b), yaml.Strict())
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("could not unmarshal yaml config: %w", err)
	}

	return nil
}

func applyOverrides(cfg *Config, overrides []string) error {
	if len(overrides) == 0 {
		return nil
	}

	tree := map[string]interface{}{}
	for _, o := range overrides {
		key, value, ok := strings.Cut(o, "=")
		if !ok || key == "" {
			return fmt.Errorf("override %q is not key=value", o)
		}

		node := tree
		parts := strings.Split(key, ".")
		for _, p := range parts[:len(parts)-1] {
			child, ok := node[p].(map[string]interface{})
			if !ok {
				child = map[string]interface{}{}
				node[p] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(tree)
}

func (c Config) validate() error {
	if _, err := log.ParseLevel(c.Logs.Level); err != nil {
		return err
	}

	switch c.Logs.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logs.Format)
	}

	switch c.Logs.Backend {
	case "zap", "logrus":
	default:
		return fmt.Errorf("unknown log backend %q", c.Logs.Backend)
	}

	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("metrics namespace is required when metrics are enabled")
	}

	return nil
}

func setLogLevel(cfg Config) {
	// Output to stdout instead of the default stderr
	log.SetOutput(os.Stdout)

	level, err := log.ParseLevel(cfg.Logs.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
