package shell

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownFileOperation is returned by the file builtin for unsupported actions.
var ErrUnknownFileOperation = errors.New("unknown file operation")

func (s *Shell) registerBuiltins() {
	s.builtins["echo"] = func(_ context.Context, args []string, s *Shell) error {
		fmt.Fprintln(s.Out, strings.Join(args, " "))

		return nil
	}

	s.builtins["exit"] = func(_ context.Context, _ []string, s *Shell) error {
		fmt.Fprintln(s.Out, s.paint(colorYellow, "Exiting PyShell..."))

		return ErrExit
	}

	s.builtins["type"] = func(_ context.Context, args []string, s *Shell) error {
		if len(args) == 0 {
			fmt.Fprintln(s.Out, "type: usage: type NAME")

			return nil
		}

		name := args[0]
		switch {
		case s.router.Handles(name):
			fmt.Fprintln(s.Out, name, "is a data structure command")
		case s.builtins[name] != nil:
			fmt.Fprintln(s.Out, name, "is a shell builtin")
		default:
			if path, ok := s.executor.Lookup(name); ok {
				fmt.Fprintln(s.Out, name, "is", path)
			} else {
				fmt.Fprintln(s.Out, name+": not found")
			}
		}

		return nil
	}

	s.builtins["pwd"] = func(_ context.Context, _ []string, s *Shell) error {
		dir, err := os.Getwd()
		if err != nil {
			return errors.Wrap(err, "error finding directory")
		}
		fmt.Fprintln(s.Out, s.paint(colorGreen, dir))

		return nil
	}

	s.builtins["cd"] = changeDirectory

	clearFn := func(_ context.Context, _ []string, s *Shell) error {
		fmt.Fprint(s.Out, clearScreen)

		return nil
	}
	s.builtins["clear"] = clearFn
	s.builtins["cls"] = clearFn

	s.builtins["history"] = func(_ context.Context, _ []string, s *Shell) error {
		for i, line := range s.history {
			fmt.Fprintf(s.Out, "%5d  %s\n", i+1, line)
		}

		return nil
	}

	s.builtins["help"] = func(_ context.Context, _ []string, s *Shell) error {
		builtins := make([]string, 0, len(s.builtins))
		for name := range s.builtins {
			builtins = append(builtins, name)
		}
		sort.Strings(builtins)

		var b strings.Builder
		b.WriteString("\nAvailable Commands:\n")
		b.WriteString("DSA Commands:\n")
		b.WriteString(s.router.Usage())
		b.WriteString("  (sort accepts 'reverse', search and bsearch take a value)\n")
		b.WriteString("File Ops: file read/write/append/delete/access filename\n")
		b.WriteString("Builtins: " + strings.Join(builtins, ", ") + "\n")
		b.WriteString("System: any OS command, pipes (|) and redirections (<, >)\n")
		fmt.Fprintln(s.Out, s.paint(colorCyan, b.String()))

		return nil
	}

	s.builtins["file"] = fileOperation
}

func changeDirectory(_ context.Context, args []string, s *Shell) error {
	target := strings.Join(args, " ")
	if target == "" || target == "~" || strings.HasPrefix(target, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "cd: HOME not set")
		}
		target = filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(target, "~"), "/"))
	}

	// a bare drive letter like "D:" changes to the root of that drive
	if strings.HasSuffix(target, ":") {
		if _, err := os.Stat(target + `\`); err == nil {
			target += `\`
		}
	}

	if err := os.Chdir(target); err != nil {
		switch {
		case os.IsNotExist(err):
			return errors.Newf("cd: %s: No such file or directory", target)
		case os.IsPermission(err):
			return errors.Newf("cd: %s: Permission denied", target)
		default:
			return errors.Wrapf(err, "cd: %s", target)
		}
	}

	dir, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "error finding directory")
	}
	fmt.Fprintln(s.Out, s.paint(colorGreen, "Changed directory to "+dir))

	return nil
}

func fileOperation(_ context.Context, args []string, s *Shell) error {
	if len(args) < 2 {
		fmt.Fprintln(s.Out, "file: usage: file read|write|append|delete|access FILENAME")

		return nil
	}

	action, filename := args[0], strings.Join(args[1:], " ")

	switch action {
	case "read":
		content, err := os.ReadFile(filename)
		if err != nil {
			return errors.Wrapf(err, "unable to read %s", filename)
		}
		fmt.Fprintln(s.Out, s.paint(colorGreen, string(content)))

	case "write", "append":
		flag := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if action == "append" {
			flag = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}

		fmt.Fprintf(s.Out, "Enter text to %s: ", action)
		text, err := s.readLine()
		if err != nil {
			return errors.Wrap(err, "unable to read text")
		}

		if err := writeFile(filename, flag, text); err != nil {
			return err
		}

		if action == "write" {
			fmt.Fprintln(s.Out, s.paint(colorGreen, "File written successfully."))
		} else {
			fmt.Fprintln(s.Out, s.paint(colorGreen, "Text appended successfully."))
		}

	case "delete":
		if err := os.Remove(filename); err != nil {
			return errors.Wrapf(err, "unable to delete %s", filename)
		}
		fmt.Fprintln(s.Out, s.paint(colorGreen, "File deleted."))

	case "access":
		if readable(filename) {
			fmt.Fprintln(s.Out, s.paint(colorGreen, filename+" is accessible."))
		} else {
			fmt.Fprintln(s.Out, s.paint(colorGreen, filename+" is not accessible."))
		}

	default:
		return errors.Wrapf(ErrUnknownFileOperation, "%s", action)
	}

	return nil
}

func writeFile(filename string, flag int, text string) error {
	file, err := os.OpenFile(filename, flag, 0o644)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", filename)
	}

	if _, err := file.WriteString(text); err != nil {
		_ = file.Close()

		return errors.Wrapf(err, "failed to write %s", filename)
	}

	return file.Close()
}

func readable(filename string) bool {
	file, err := os.Open(filename)
	if err != nil {
		return false
	}
	_ = file.Close()

	return true
}
