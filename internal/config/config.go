package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/benroose/ansible-docker-machine-inventory-plugin/internal/constructed"
)

// PluginToken is the value the plugin option must carry for a config
// file to be accepted as a docker_machine inventory source.
const PluginToken = "docker_machine"

type Config struct {
	Plugin         string                   `mapstructure:"plugin"`
	VerboseOutput  bool                     `mapstructure:"verbose_output"`
	SplitTags      bool                     `mapstructure:"split_tags"`
	SplitSeparator string                   `mapstructure:"split_separator"`
	Strict         bool                     `mapstructure:"strict"`
	Compose        map[string]string        `mapstructure:"compose"`
	Groups         []constructed.GroupRule  `mapstructure:"groups"`
	KeyedGroups    []constructed.KeyedGroup `mapstructure:"keyed_groups"`
}

func Load() (*Config, error) {
	cfg := &Config{
		VerboseOutput:  true,
		SplitSeparator: ":",
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// CheckPlugin rejects config files written for a different inventory
// plugin.
func (c *Config) CheckPlugin() error {
	if c.Plugin != PluginToken {
		return fmt.Errorf("config plugin is %q, expected %q", c.Plugin, PluginToken)
	}
	return nil
}
