package config

import (
	"errors"
	"fmt"
	"strings"

	"benchgate/internal/requirements"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ANALYZE_BENCHMARKS_BASELINE.
const EnvPrefix = "ANALYZE_BENCHMARKS"

// Config holds the settings of one analysis run.
type Config struct {
	Projects     []string                   `mapstructure:"projects"`
	Baseline     string                     `mapstructure:"baseline"`
	Requirements []requirements.Requirement `mapstructure:"requirements"`

	Verbose     bool   `mapstructure:"verbose"`
	NoColor     bool   `mapstructure:"no_color"`
	LogFile     string `mapstructure:"log_file"`
	MetricsFile string `mapstructure:"metrics_file"`
	JSONFile    string `mapstructure:"json_file"`
}

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"verbose":      "verbose",
	"no-color":     "no_color",
	"log-file":     "log_file",
	"metrics-file": "metrics_file",
	"json":         "json_file",
}

// Load reads the configuration from defaults, an optional config file,
// environment variables and the given flags, in increasing precedence.
// Without a config file the defaults reproduce requirements 10.1 and 10.2.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".analyze_benchmarks")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("projects", requirements.DefaultProjects())
	v.SetDefault("baseline", requirements.DefaultBaseline)
	v.SetDefault("requirements", requirements.DefaultRequirements())
	v.SetDefault("verbose", false)
	v.SetDefault("no_color", false)
	v.SetDefault("log_file", "")
	v.SetDefault("metrics_file", "")
	v.SetDefault("json_file", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicitly requested file must exist; the implicit one is optional.
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for flag, key := range flagKeys {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag --%s: %w", flag, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// String summarizes the effective settings for debug logs.
func (c *Config) String() string {
	ids := make([]string, len(c.Requirements))
	for i, r := range c.Requirements {
		ids[i] = r.ID
	}
	return fmt.Sprintf("projects=%s baseline=%s requirements=%s",
		strings.Join(c.Projects, ","), c.Baseline, strings.Join(ids, ","))
}
