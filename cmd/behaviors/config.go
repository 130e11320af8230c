package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/grindlemire/go-tui-behaviors/widgets"
)

// Backends the demo can drive.
const (
	BackendTea   = "tea"
	BackendTcell = "tcell"
)

// Config holds the demo configuration. Values come from defaults, an optional
// YAML file, BEHAVIORS_ environment variables and flags, in rising priority.
type Config struct {
	Backend  string `mapstructure:"backend"`
	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level"`

	Tabs  TabsConfig  `mapstructure:"tabs"`
	Modes ModesConfig `mapstructure:"modes"`
}

// TabsConfig configures the tabs demo.
type TabsConfig struct {
	Position    string   `mapstructure:"position"`
	Wrap        bool     `mapstructure:"wrap"`
	Collapsible bool     `mapstructure:"collapsible"`
	Width       int      `mapstructure:"width"`
	Pages       []string `mapstructure:"pages"`
}

// ModesConfig configures the modes demo.
type ModesConfig struct {
	Names []string `mapstructure:"names"`
	Wrap  bool     `mapstructure:"wrap"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", BackendTea)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("tabs.position", string(widgets.TabsTop))
	v.SetDefault("tabs.wrap", false)
	v.SetDefault("tabs.collapsible", false)
	v.SetDefault("tabs.width", 48)
	v.SetDefault("tabs.pages", []string{"Overview", "Details", "History"})
	v.SetDefault("modes.names", []string{"list", "grid", "detail"})
	v.SetDefault("modes.wrap", true)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("BEHAVIORS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the config file at path, if any, and decodes v.
func loadConfig(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	switch c.Backend {
	case BackendTea, BackendTcell:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendTea, BackendTcell)
	}
	if _, err := widgets.ParseTabPosition(c.Tabs.Position); err != nil {
		return err
	}
	if c.Tabs.Width < 0 {
		return fmt.Errorf("tabs width must not be negative, got %d", c.Tabs.Width)
	}
	return nil
}
