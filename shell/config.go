package shell

import (
	"github.com/iotaledger/dsashell/configuration"
)

const (
	ConfigurationKeyPrompt = "shell.prompt"
	ConfigurationKeyBanner = "shell.banner"
	ConfigurationKeyColor  = "shell.color"
)

// Config holds the settings of the interactive shell.
type Config struct {
	// Prompt is printed before every command.
	Prompt string `json:"prompt"`
	// Banner prints the welcome message on start.
	Banner bool `json:"banner"`
	// Color enables ANSI colored output.
	Color bool `json:"color"`
}

var DefaultCfg = Config{
	Prompt: "PyShell> ",
	Banner: true,
	Color:  true,
}

// Defaults returns the default config as flat configuration keys.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		ConfigurationKeyPrompt: DefaultCfg.Prompt,
		ConfigurationKeyBanner: DefaultCfg.Banner,
		ConfigurationKeyColor:  DefaultCfg.Color,
	}
}

// ConfigFromConfiguration reads the shell.* keys, unset keys keep their DefaultCfg value.
func ConfigFromConfiguration(config *configuration.Configuration) Config {
	cfg := DefaultCfg
	if config.Exists(ConfigurationKeyPrompt) {
		cfg.Prompt = config.String(ConfigurationKeyPrompt)
	}
	if config.Exists(ConfigurationKeyBanner) {
		cfg.Banner = config.Bool(ConfigurationKeyBanner)
	}
	if config.Exists(ConfigurationKeyColor) {
		cfg.Color = config.Bool(ConfigurationKeyColor)
	}

	return cfg
}
