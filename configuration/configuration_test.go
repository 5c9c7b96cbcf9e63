package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/dsashell/configuration"
)

func writeFile(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.LoadDefaults(map[string]interface{}{
		"shell.prompt": "> ",
		"shell.Color":  true,
	}))

	require.Equal(t, "> ", config.String("shell.prompt"))
	require.True(t, config.Bool("shell.color"))
	require.True(t, config.Exists("SHELL.COLOR"))
}

func TestFetchFlagset(t *testing.T) {
	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.String("shell.prompt", "$ ", "test")
	testFlagSet.Bool("shell.color", true, "test")
	require.NoError(t, testFlagSet.Parse([]string{"--shell.prompt=# "}))

	config := configuration.New()
	require.NoError(t, config.LoadDefaults(map[string]interface{}{"shell.color": false}))
	require.NoError(t, config.LoadFlagSet(testFlagSet))

	require.EqualValues(t, "# ", config.String("shell.prompt"))
	require.False(t, config.Bool("shell.color"), "unchanged flag must not override an existing key")
}

func TestFetchEnvVars(t *testing.T) {
	t.Setenv("TEST_SHELL_PROMPT", "env> ")
	t.Setenv("TEST_OTHER", "321")

	config := configuration.New()
	require.NoError(t, config.LoadDefaults(map[string]interface{}{"shell.prompt": "$ "}))
	require.NoError(t, config.LoadEnvironmentVars("TEST"))

	require.Equal(t, "env> ", config.String("shell.prompt"))
	_, exists := config.All()["other"]
	require.False(t, exists, "expected read config value to not exist")
}

func TestFetchJSONFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"Logger": {"Level": "debug", "OutputPaths": ["stdout", "out.log"]}}`)

	config := configuration.New()
	require.NoError(t, config.LoadFile(path))

	require.Equal(t, "debug", config.String("logger.level"))
	require.Equal(t, []string{"stdout", "out.log"}, config.Strings("logger.outputPaths"))
}

func TestFetchYAMLFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "shell:\n  Prompt: \"yaml> \"\n  banner: false\n")

	config := configuration.New()
	require.NoError(t, config.LoadDefaults(map[string]interface{}{"shell.banner": true}))
	require.NoError(t, config.LoadFile(path))

	require.Equal(t, "yaml> ", config.String("shell.prompt"))
	require.False(t, config.Bool("shell.banner"))
}

func TestLoadFileErrors(t *testing.T) {
	config := configuration.New()

	err := config.LoadFile(writeFile(t, "config.toml", "a = 1"))
	require.True(t, errors.Is(err, configuration.ErrUnknownConfigFormat))

	err = config.LoadFile(t.TempDir())
	require.True(t, errors.Is(err, configuration.ErrPathIsDirectory))

	err = config.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSet(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.Set("logger.Level", "error"))
	require.Equal(t, "error", config.String("logger.level"))
	require.Equal(t, "error", config.Get("logger.level"))

	require.NoError(t, config.LoadDefaults(map[string]interface{}{"shell.prompt": "$ ", "shell.color": true}))
	require.NoError(t, config.Set("Shell.Prompt", "# "))
	require.Equal(t, "# ", config.String("shell.prompt"))
	require.True(t, config.Bool("shell.color"), "siblings of an overridden key are kept")
	require.Equal(t, "error", config.String("logger.level"))
}
