// Package config loads service settings from defaults, an optional YAML file,
// COSTINTEL_* environment variables and command-line flags, in that order of
// increasing precedence.
package config

import (
	"cost-intelligence-service/internal/domain"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	EnvPrefix         = "COSTINTEL_"
	DefaultConfigFile = "costintel.yaml"

	DefaultDataDir      = "Case study internship data"
	DefaultOrdersFile   = "orders.csv"
	DefaultRoutesFile   = "routes_distance.csv"
	DefaultDeliveryFile = "delivery_performance.csv"
	DefaultCostsFile    = "cost_breakdown.csv"
	DefaultPort         = 8080
)

type Config struct {
	DataDir      string `koanf:"data_dir"`
	OrdersFile   string `koanf:"orders_file"`
	RoutesFile   string `koanf:"routes_file"`
	DeliveryFile string `koanf:"delivery_file"`
	CostsFile    string `koanf:"costs_file"`

	Port               int    `koanf:"port"`
	ZeroDistancePolicy string `koanf:"zero_distance_policy"`
	CacheEnabled       bool   `koanf:"cache_enabled"`
	Watch              bool   `koanf:"watch"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"data_dir":             DefaultDataDir,
		"orders_file":          DefaultOrdersFile,
		"routes_file":          DefaultRoutesFile,
		"delivery_file":        DefaultDeliveryFile,
		"costs_file":           DefaultCostsFile,
		"port":                 DefaultPort,
		"zero_distance_policy": string(domain.PolicyExclude),
		"cache_enabled":        true,
		"watch":                true,
		"log_level":            "info",
		"log_format":           "console",
	}
}

// RegisterFlags adds the flags that can override configuration keys.
// Flag names are the keys in kebab-case.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default: ./"+DefaultConfigFile+" if present)")
	fs.String("data-dir", "", "directory holding the four source CSV files")
	fs.String("orders-file", "", "orders CSV file name")
	fs.String("routes-file", "", "routes/distance CSV file name")
	fs.String("delivery-file", "", "delivery performance CSV file name")
	fs.String("costs-file", "", "cost breakdown CSV file name")
	fs.Int("port", 0, "HTTP listen port")
	fs.String("zero-distance-policy", "", "cost per km for zero distance: exclude|zero")
	fs.Bool("cache-enabled", true, "cache the joined dataset between requests")
	fs.Bool("watch", true, "invalidate the cache when source files change")
	fs.String("log-level", "", "log level (debug|info|warn|error)")
	fs.String("log-format", "", "log format (console|json)")
}

// Load builds a Config. cfgFile may be empty, in which case ./costintel.yaml is
// read when it exists. flags may be nil; only flags that were set override.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load config: defaults: %w", err)
	}

	if cfgFile == "" && flags != nil {
		if v, err := flags.GetString("config"); err == nil {
			cfgFile = v
		}
	}
	explicit := cfgFile != ""
	if !explicit {
		cfgFile = DefaultConfigFile
	}
	if _, err := os.Stat(cfgFile); err == nil {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config: read %s: %w", cfgFile, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// COSTINTEL_DATA_DIR -> data_dir
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load config: env: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load config: flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and required keys.
func (c *Config) Validate() error {
	var errs []error

	if _, err := domain.ParseZeroDistancePolicy(c.ZeroDistancePolicy); err != nil {
		errs = append(errs, err)
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port must be between 1 and 65535, got %d", c.Port))
	}
	for _, f := range []struct{ key, value string }{
		{"orders_file", c.OrdersFile},
		{"routes_file", c.RoutesFile},
		{"delivery_file", c.DeliveryFile},
		{"costs_file", c.CostsFile},
	} {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, fmt.Errorf("%s is required", f.key))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Policy returns the parsed zero-distance policy. Validate has already run.
func (c *Config) Policy() domain.ZeroDistancePolicy {
	p, _ := domain.ParseZeroDistancePolicy(c.ZeroDistancePolicy)
	return p
}

// SourcePaths resolves the four source files against DataDir.
func (c *Config) SourcePaths() (orders, routes, delivery, costs string) {
	resolve := func(name string) string {
		if filepath.IsAbs(name) || c.DataDir == "" {
			return name
		}
		return filepath.Join(c.DataDir, name)
	}
	return resolve(c.OrdersFile), resolve(c.RoutesFile), resolve(c.DeliveryFile), resolve(c.CostsFile)
}
