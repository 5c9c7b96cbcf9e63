package logger

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/dsashell/configuration"
)

// Logger is the logger used across the shell.
type Logger = zap.SugaredLogger

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config) (*Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.Level)
	}

	zapCfg := zap.Config{
		Level:             level,
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          cfg.Encoding,
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	root, err := zapCfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "unable to build logger")
	}

	return root.Sugar(), nil
}

// NewRootLoggerFromConfiguration creates a new root logger from the logger.* keys of the configuration.
// Keys that are not set keep their DefaultCfg value.
func NewRootLoggerFromConfiguration(config *configuration.Configuration) (*Logger, error) {
	cfg := DefaultCfg

	if val := config.String(ConfigurationKeyLevel); val != "" {
		cfg.Level = val
	}
	if config.Exists(ConfigurationKeyDisableCaller) {
		cfg.DisableCaller = config.Bool(ConfigurationKeyDisableCaller)
	}
	if config.Exists(ConfigurationKeyDisableStacktrace) {
		cfg.DisableStacktrace = config.Bool(ConfigurationKeyDisableStacktrace)
	}
	if val := config.String(ConfigurationKeyEncoding); val != "" {
		cfg.Encoding = val
	}
	if val := config.Strings(ConfigurationKeyOutputPaths); len(val) > 0 {
		cfg.OutputPaths = val
	}

	return NewRootLogger(cfg)
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Logger {
	return zap.NewNop().Sugar()
}

// NewCoreLogger wraps a zap core, mainly used to observe log output in tests.
func NewCoreLogger(core zapcore.Core) *Logger {
	return zap.New(core).Sugar()
}
