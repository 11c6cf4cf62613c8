package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/krew-solutions/eos-go/eos/observability/oteltrace"
	"github.com/krew-solutions/eos-go/eos/observability/prommetrics"
	"github.com/krew-solutions/eos-go/eos/observability/zaplog"
	"github.com/krew-solutions/eos-go/eos/registry"
)

// Config describes how a registry is built. Zero values mean "off" or the
// registry default.
type Config struct {
	ErrorPolicy string        `json:"error_policy" yaml:"error_policy" toml:"error_policy"`
	Log         LogConfig     `json:"log" yaml:"log" toml:"log"`
	Metrics     MetricsConfig `json:"metrics" yaml:"metrics" toml:"metrics"`
	Tracing     TracingConfig `json:"tracing" yaml:"tracing" toml:"tracing"`
}

type LogConfig struct {
	// Level is a zap level name; empty disables logging.
	Level       string `json:"level" yaml:"level" toml:"level"`
	Invocations bool   `json:"invocations" yaml:"invocations" toml:"invocations"`
}

type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
	Namespace string `json:"namespace" yaml:"namespace" toml:"namespace"`
	Subsystem string `json:"subsystem" yaml:"subsystem" toml:"subsystem"`
}

type TracingConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
	Name    string `json:"name" yaml:"name" toml:"name"`
}

func Default() Config {
	return Config{ErrorPolicy: registry.FailFast.String()}
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, errors.New("config: empty path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "config: read")
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	default:
		return cfg, errors.Errorf("config: unsupported extension %q", ext)
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "config: parse %s", path)
	}
	return cfg, nil
}

// Options turns the configuration into registry options. Metrics are
// registered on reg, which may be nil when metrics are disabled.
func (c Config) Options(reg prometheus.Registerer) ([]registry.Option, error) {
	policy, err := registry.ParseErrorPolicy(c.ErrorPolicy)
	if err != nil {
		return nil, err
	}
	opts := []registry.Option{registry.WithErrorPolicy(policy)}

	if c.Log.Level != "" {
		logger, err := zaplog.New(c.Log.Level, zaplog.Component)
		if err != nil {
			return nil, err
		}
		opts = append(opts, registry.WithLogger(logger))
		if c.Log.Invocations {
			opts = append(opts, registry.WithInterceptors(zaplog.Interceptor(logger)))
		}
	}

	if c.Metrics.Enabled {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		collector, err := prommetrics.New(reg, c.Metrics.Namespace, c.Metrics.Subsystem)
		if err != nil {
			return nil, err
		}
		opts = append(opts, collector.Options()...)
	}

	if c.Tracing.Enabled {
		opts = append(opts, oteltrace.New(c.Tracing.Name).Options()...)
	}
	return opts, nil
}
