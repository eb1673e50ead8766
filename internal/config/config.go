// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
	"github.com/nawocci/omen-fan/internal/core"
	"github.com/spf13/viper"
)

// Config holds the global configuration for the setup tool. A configuration
// file is optional; the defaults are sensible for a live system.
type Config struct {
	Log logx.LoggingConfig `yaml:"log" json:"log"`

	// BypassDeviceCheck skips the DMI product name check, for users running
	// on hardware that is compatible but not on the supported list.
	BypassDeviceCheck bool `yaml:"bypassDeviceCheck" json:"bypassDeviceCheck"`

	// AssumeYes answers every confirmation prompt affirmatively, for
	// non-interactive runs.
	AssumeYes bool `yaml:"assumeYes" json:"assumeYes"`
}

var globalConfig = Config{
	Log: logx.LoggingConfig{
		Level:          "Info",
		ConsoleLogging: true,
		FileLogging:    false,
	},
}

// DefaultFile is consulted when no explicit path is given. Its absence is
// not an error; the built-in defaults apply.
var DefaultFile = filepath.Join(core.ConfigDir, "setup.yaml")

// Initialize loads the configuration from the given file, falling back to
// DefaultFile when the path is empty.
func Initialize(path string) error {
	if path == "" {
		if _, err := os.Stat(DefaultFile); err != nil {
			return nil
		}
		path = DefaultFile
	}

	globalConfig = Config{}
	viper.Reset()
	viper.SetConfigFile(path)
	viper.SetEnvPrefix("OMEN_FAN_SETUP")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	err := viper.ReadInConfig()
	if err != nil {
		return NotFoundError.Wrap(err, "failed to read config file: %s", path).
			WithProperty(errorx.PropertyPayload(), path)
	}

	if err := viper.Unmarshal(&globalConfig); err != nil {
		return errorx.IllegalFormat.Wrap(err, "failed to parse configuration").
			WithProperty(errorx.PropertyPayload(), path)
	}

	return nil
}

// Get returns the loaded configuration.
func Get() Config {
	return globalConfig
}

func Set(c *Config) error {
	globalConfig = *c
	return nil
}

// SetAssumeYes overrides the confirmation behaviour, typically from the
// --yes command line flag.
func SetAssumeYes(yes bool) {
	globalConfig.AssumeYes = yes
}

// SetBypassDeviceCheck overrides the hardware check, typically from the
// --bypass command line flag.
func SetBypassDeviceCheck(bypass bool) {
	globalConfig.BypassDeviceCheck = bypass
}
