package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// LogLevel is one of debug|info|warn|error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// Delimiter is the default CSV delimiter: "," | ";" | "tab".
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	// ChartOut is a default path for the chart spec JSON; empty disables it.
	ChartOut string `mapstructure:"chart_out" yaml:"chart_out"`
	// HeaderAliases adds extra column-name aliases per canonical field,
	// merged into the resolver's built-in table.
	HeaderAliases map[string][]string `mapstructure:"header_aliases" yaml:"header_aliases"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.comps/config.yaml, creating the directory if needed.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".comps")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("COMPS")
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("delimiter", ",")
	v.SetDefault("chart_out", "")
	v.SetDefault("header_aliases", map[string][]string{})

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".comps")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
