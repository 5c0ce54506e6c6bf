package runner

import (
	"github.com/eaugeas/redblack/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	inputKey    = "input"
	outputKey   = "output"
	logLevelKey = "log.level"
)

// Config of the rbtree command
type Config struct {
	// Input is the path of the key source
	Input string

	// Output is the path the traversals are written to
	Output string

	// LogLevel is the minimum level of the entries logged
	LogLevel string
}

func (c *Config) Use() string {
	return "rbtree"
}

func (c *Config) EnvPrefix() string {
	return "rbtree"
}

func (c *Config) Binders() []config.Binder {
	return []config.Binder{c}
}

func (c *Config) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(inputKey, "input.txt", "file holding the keys to insert and delete")
	cmd.PersistentFlags().String(outputKey, "output.txt", "file the traversals are written to")
	cmd.PersistentFlags().String(logLevelKey, "info", "log level: debug, info, warn or error")
	return nil
}

func (c *Config) Configure(v *viper.Viper) error {
	c.Input = v.GetString(inputKey)
	c.Output = v.GetString(outputKey)
	c.LogLevel = v.GetString(logLevelKey)

	if c.Input == "" {
		return errors.New("input path must not be empty")
	}
	if c.Output == "" {
		return errors.New("output path must not be empty")
	}

	return nil
}
