package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	flag "github.com/spf13/pflag"
)

var (
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = errors.New("unknown config file format")
	// ErrPathIsDirectory is returned if the config file path points to a directory.
	ErrPathIsDirectory = errors.New("config path is a directory")
)

// Configuration holds config parameters from several sources (defaults, file, env vars, flags).
// All keys are lower cased.
type Configuration struct {
	config *koanf.Koanf
}

// New returns a new configuration.
func New() *Configuration {
	return &Configuration{
		config: koanf.New("."),
	}
}

// LoadDefaults merges the given flat key/value pairs into the loaded config.
func (c *Configuration) LoadDefaults(defaults map[string]interface{}) error {
	lowered := make(map[string]interface{}, len(defaults))
	for key, value := range defaults {
		lowered[strings.ToLower(key)] = value
	}

	return c.config.Load(confmap.Provider(lowered, "."), nil)
}

// LoadFile loads parameters from a JSON or YAML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return errors.Wrapf(err, "unable to load config file %s", filePath)
	}
	if info.IsDir() {
		return errors.Wrapf(ErrPathIsDirectory, "%s", filePath)
	}

	var parser koanf.Parser
	switch filepath.Ext(filePath) {
	case ".json":
		parser = &JSONLowerParser{}
	case ".yaml", ".yml":
		parser = &YAMLLowerParser{}
	default:
		return errors.Wrapf(ErrUnknownConfigFormat, "%s", filePath)
	}

	return c.config.Load(file.Provider(filePath), parser)
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including
// default values and merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
// If not given via command line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars.
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}

// Set overrides a single parameter.
func (c *Configuration) Set(key string, value interface{}) error {
	return c.config.Load(confmap.Provider(map[string]interface{}{strings.ToLower(key): value}, "."), nil)
}

// Exists checks whether the parameter was loaded from any source.
func (c *Configuration) Exists(key string) bool {
	return c.config.Exists(strings.ToLower(key))
}

func (c *Configuration) Get(key string) interface{} {
	return c.config.Get(strings.ToLower(key))
}

func (c *Configuration) String(key string) string {
	return c.config.String(strings.ToLower(key))
}

func (c *Configuration) Bool(key string) bool {
	return c.config.Bool(strings.ToLower(key))
}

func (c *Configuration) Strings(key string) []string {
	return c.config.Strings(strings.ToLower(key))
}

// All returns the flattened key/value map of all loaded parameters.
func (c *Configuration) All() map[string]interface{} {
	return c.config.All()
}
