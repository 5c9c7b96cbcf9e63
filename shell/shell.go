package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/dsashell/logger"
)

// ErrExit is returned by the exit builtin to stop the shell.
var ErrExit = errors.New("exit")

// Builtin is a command implemented by the shell itself.
type Builtin func(ctx context.Context, args []string, s *Shell) error

// Shell reads one command per line and runs it to completion before reading the next.
type Shell struct {
	in       *bufio.Reader
	stdin    io.Reader
	Out      io.Writer
	Err      io.Writer
	config   Config
	log      *logger.Logger
	parser   Parser
	executor Executor
	router   *Router
	builtins map[string]Builtin
	history  []string

	// interrupts holds at most one pending interrupt, cancelCommand the cancel func of the running command.
	interrupts    chan struct{}
	mutex         sync.Mutex
	cancelCommand context.CancelFunc
}

type readResult struct {
	line string
	err  error
}

// New creates a shell reading from reader. Executor runs everything that is neither a builtin nor a structure command.
func New(reader io.Reader, out, errw io.Writer, cfg Config, executor Executor, log *logger.Logger) *Shell {
	s := &Shell{
		in:         bufio.NewReader(reader),
		Out:        out,
		Err:        errw,
		config:     cfg,
		log:        log.Named("shell"),
		parser:     NewDefaultParser(),
		executor:   executor,
		router:     NewRouter(log.Named("router")),
		builtins:   make(map[string]Builtin),
		interrupts: make(chan struct{}, 1),
	}
	// external commands only share the input if it is a real file, e.g. the terminal
	if file, ok := reader.(*os.File); ok {
		s.stdin = file
	}

	s.registerBuiltins()

	return s
}

// Router returns the router owning the containers.
func (s *Shell) Router() *Router {
	return s.router
}

// History returns the executed command lines, oldest first.
func (s *Shell) History() []string {
	return append([]string(nil), s.history...)
}

// Interrupt cancels the running command, if any. The shell keeps running and reminds the user how to leave it.
// It is safe to call from another goroutine, e.g. a signal handler.
func (s *Shell) Interrupt() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cancelCommand != nil {
		s.cancelCommand()
	}

	select {
	case s.interrupts <- struct{}{}:
	default:
	}
}

// Run executes commands until the exit builtin is called, the input ends or the context is canceled.
func (s *Shell) Run(ctx context.Context) error {
	if s.config.Banner {
		fmt.Fprintln(s.Out, s.paint(colorCyan, "Welcome to PyShell: DSA + FileOps + System Commands"))
		fmt.Fprintln(s.Out, s.paint(colorYellow, "Type 'help' for commands. Type 'exit' to quit.")+"\n")
	}

	// lines are only read on request, so running commands own the input
	requests := make(chan struct{})
	results := make(chan readResult, 1)
	defer close(requests)
	go func() {
		for range requests {
			line, err := s.readLine()
			results <- readResult{line: line, err: err}
		}
	}()

	pending := false
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.Out, s.paint(colorYellow, s.config.Prompt))

		if !pending {
			requests <- struct{}{}
			pending = true
		}

		var result readResult
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.interrupts:
			s.printInterruptNotice()

			continue
		case result = <-results:
			pending = false
		}

		if result.err != nil {
			if errors.Is(result.err, io.EOF) {
				fmt.Fprintln(s.Out)

				return nil
			}

			return result.err
		}

		if err := s.executeInterruptible(ctx, result.line); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}

			return err
		}
	}
}

// executeInterruptible runs line with its own context, which Interrupt cancels.
func (s *Shell) executeInterruptible(ctx context.Context, line string) error {
	commandCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mutex.Lock()
	s.cancelCommand = cancel
	s.mutex.Unlock()

	err := s.Execute(commandCtx, line)

	s.mutex.Lock()
	s.cancelCommand = nil
	s.mutex.Unlock()

	select {
	case <-s.interrupts:
		s.printInterruptNotice()
	default:
	}

	return err
}

func (s *Shell) printInterruptNotice() {
	fmt.Fprintln(s.Out, "\n"+s.paint(colorRed, "Use 'exit' to quit."))
}

// readLine returns the next line without its line terminator. A final line without terminator is returned as well.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Execute runs a single command line. Command failures are reported on the error stream, only ErrExit and fatal
// read errors are returned.
func (s *Shell) Execute(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	s.history = append(s.history, line)

	if strings.ContainsAny(line, "|<>") {
		s.log.Debugw("passing line to the system shell", "line", line)
		if _, err := s.executor.ExecuteLine(ctx, line, s.bindings()); err != nil {
			s.reportError(err)
		}

		return nil
	}

	args, err := s.parser.Parse(line)
	if err != nil {
		s.reportError(err)

		return nil
	}
	if len(args) == 0 {
		return nil
	}

	cmd := strings.ToLower(args[0])

	if s.router.Handles(cmd) {
		output, err := s.router.Execute(cmd, args[1:])
		if err != nil {
			s.reportError(err)

			return nil
		}
		if output != "" {
			fmt.Fprintln(s.Out, s.paint(colorGreen, output))
		}

		return nil
	}

	if fn, ok := s.builtins[cmd]; ok {
		if err := fn(ctx, args[1:], s); err != nil {
			if errors.Is(err, ErrExit) {
				return err
			}

			s.reportError(err)
		}

		return nil
	}

	s.log.Debugw("executing external command", "command", args[0])
	if _, err := s.executor.Execute(ctx, args[0], args[1:], s.bindings()); err != nil {
		if errors.Is(err, ErrNotFound) {
			fmt.Fprintln(s.Out, args[0]+": command not found")

			return nil
		}
		if ctx.Err() != nil {
			// interrupted
			return nil
		}

		s.reportError(err)
	}

	return nil
}

func (s *Shell) bindings() IOBindings {
	return IOBindings{
		Stdin:  s.stdin,
		Stdout: s.colored(s.Out, colorGreen),
		Stderr: s.colored(s.Err, colorRed),
	}
}

func (s *Shell) reportError(err error) {
	fmt.Fprintln(s.Err, s.paint(colorRed, fmt.Sprintf("Error: %v", err)))
}
