package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/uyouii/natural-breaks-csv/common"
	"github.com/uyouii/natural-breaks-csv/jenks"
)

const (
	DefaultLabelColumn = "JENKS_BIN"
	DefaultPlotFile    = "jenks.png"
	DefaultLogLevel    = "info"
)

var (
	errInvalidClasses      = fmt.Errorf("%w: classes must be positive", common.ErrorInvalidInput)
	errInvalidMaxClasses   = errors.New("max_classes must be at least 2 when gvf_threshold is set")
	errInvalidGVFThreshold = errors.New("gvf_threshold must be in [0, 1]")
	errMissingLabelColumn  = errors.New("label_column must not be empty")
	errMissingPlotFile     = errors.New("plot_file must not be empty when plot is enabled")
)

type Config struct {
	Classes     int    `mapstructure:"classes" yaml:"classes"`
	LabelColumn string `mapstructure:"label_column" yaml:"label_column"`

	Plot     bool   `mapstructure:"plot" yaml:"plot"`
	PlotFile string `mapstructure:"plot_file" yaml:"plot_file"`

	// GVFThreshold > 0 picks the class count automatically, up to MaxClasses.
	GVFThreshold float64 `mapstructure:"gvf_threshold" yaml:"gvf_threshold"`
	MaxClasses   int     `mapstructure:"max_classes" yaml:"max_classes"`

	JSON     bool   `mapstructure:"json" yaml:"json"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("classes", jenks.DefaultClassCount)
	v.SetDefault("label_column", DefaultLabelColumn)
	v.SetDefault("plot", false)
	v.SetDefault("plot_file", DefaultPlotFile)
	v.SetDefault("gvf_threshold", 0.0)
	v.SetDefault("max_classes", jenks.DefaultMaxClassCount)
	v.SetDefault("json", false)
	v.SetDefault("log_level", DefaultLogLevel)
}

// Load reads the config file named by the "config" key, if any.
func Load(v *viper.Viper) error {
	return LoadFile(v, v.GetString("config"))
}

func LoadFile(v *viper.Viper, file string) error {
	if file == "" {
		return nil
	}
	ext := filepath.Ext(file)
	if ext == "" {
		return fmt.Errorf("config file %s has no extension", file)
	}
	v.SetConfigFile(file)
	v.SetConfigType(ext[1:])
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func Parse(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.GVFThreshold < 0 || c.GVFThreshold > 1 {
		return errInvalidGVFThreshold
	}
	if c.AutoClasses() {
		if c.MaxClasses < 2 {
			return errInvalidMaxClasses
		}
	} else if c.Classes < 1 {
		return errInvalidClasses
	}
	if c.LabelColumn == "" {
		return errMissingLabelColumn
	}
	if c.Plot && c.PlotFile == "" {
		return errMissingPlotFile
	}
	return nil
}

// AutoClasses reports whether the class count is picked from the GVF
// threshold instead of Classes.
func (c *Config) AutoClasses() bool {
	return c.GVFThreshold > 0
}
