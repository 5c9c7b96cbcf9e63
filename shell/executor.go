package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrNotFound is returned if an external command can not be found on the PATH.
var ErrNotFound = errors.New("not found")

// IOBindings are the streams an external command is attached to.
type IOBindings struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Executor runs OS commands on behalf of the shell.
type Executor interface {
	// Execute runs the named program with args and returns its exit code.
	Execute(ctx context.Context, name string, args []string, io IOBindings) (int, error)
	// ExecuteLine hands the whole line to the system shell, used for pipes and redirections.
	ExecuteLine(ctx context.Context, line string, io IOBindings) (int, error)
	// Lookup resolves the named program on the PATH.
	Lookup(name string) (string, bool)
}

// DefaultExecutor runs commands found in the directories of PATH.
type DefaultExecutor struct {
	pathDirs []string
}

// NewDefaultExecutor creates an executor for the given PATH value.
func NewDefaultExecutor(path string) *DefaultExecutor {
	var dirs []string
	if path != "" {
		dirs = filepath.SplitList(path)
	}

	return &DefaultExecutor{pathDirs: dirs}
}

func (e *DefaultExecutor) Execute(ctx context.Context, name string, args []string, io IOBindings) (int, error) {
	path, ok := e.Lookup(name)
	if !ok {
		return -1, errors.Wrapf(ErrNotFound, "%s", name)
	}

	externalCmd := exec.CommandContext(ctx, path, args...)
	externalCmd.Args = append([]string{name}, args...)

	return run(externalCmd, io)
}

func (e *DefaultExecutor) ExecuteLine(ctx context.Context, line string, io IOBindings) (int, error) {
	var externalCmd *exec.Cmd
	if runtime.GOOS == "windows" {
		externalCmd = exec.CommandContext(ctx, "cmd", "/C", line)
	} else {
		externalCmd = exec.CommandContext(ctx, "sh", "-c", line)
	}

	return run(externalCmd, io)
}

// Lookup returns the first regular executable file called name in the PATH directories.
func (e *DefaultExecutor) Lookup(name string) (string, bool) {
	if strings.ContainsRune(name, os.PathSeparator) {
		return name, isExecutable(name)
	}

	for _, dir := range e.pathDirs {
		pathToCheck := filepath.Join(dir, name)
		if isExecutable(pathToCheck) {
			return pathToCheck, true
		}
	}

	return "", false
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	return runtime.GOOS == "windows" || info.Mode()&0o111 != 0
}

func run(externalCmd *exec.Cmd, io IOBindings) (int, error) {
	externalCmd.Stdin = io.Stdin
	externalCmd.Stdout = io.Stdout
	externalCmd.Stderr = io.Stderr

	if err := externalCmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}

		return -1, errors.Wrapf(err, "failed to run %s", externalCmd.Path)
	}

	return 0, nil
}
