// Command mazepath solves, generates and serves square grid mazes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Exit codes beyond the generic failure.
const (
	exitUsage   = 2
	exitNoStart = 3
	exitNoPath  = 4
)

// ExitError carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

var (
	stdin     io.Reader = os.Stdin
	logOutput io.Writer = os.Stderr
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

const usage = `mazepath - shortest paths through square grid mazes.

Usage:
  mazepath <command> [options] [args]

Commands:
  solve     Solve one or more grid files ("-" reads stdin).
  generate  Generate a grid from a configuration file.
  run       Generate and solve until a grid has a path.
  serve     Serve the solver over HTTP and websocket.

Run "mazepath <command> -h" for the options of a command.
`

// run dispatches to a subcommand and writes its results to out.
func run(out io.Writer, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return &ExitError{Code: exitUsage, Message: "missing command"}
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "solve":
		return runSolve(out, rest)
	case "generate":
		return runGenerate(out, rest)
	case "run":
		return runLoop(out, rest)
	case "serve":
		return runServe(out, rest)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(out, usage)
		return nil
	}
	return &ExitError{Code: exitUsage, Message: fmt.Sprintf("unknown command %q", cmd)}
}

// logFlags are shared by every subcommand.
type logFlags struct {
	level  string
	format string
}

func (lf *logFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&lf.level, "log-level", "warn", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	fs.StringVar(&lf.format, "log-format", "text", "Log output format: 'text' or 'json'.")
}

// logger builds the command logger from the flags.
func (lf *logFlags) logger() (*log.Logger, error) {
	level, err := log.ParseLevel(strings.ToLower(lf.level))
	if err != nil {
		return nil, &ExitError{Code: exitUsage, Message: fmt.Sprintf("invalid log-level %q", lf.level)}
	}
	l := log.New()
	l.SetOutput(logOutput)
	l.SetLevel(level)
	switch strings.ToLower(lf.format) {
	case "text":
		l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&log.JSONFormatter{})
	default:
		return nil, &ExitError{Code: exitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	return l, nil
}

// newFlagSet returns a ContinueOnError flag set writing usage to out.
func newFlagSet(name string, out io.Writer, lf *logFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	lf.register(fs)
	return fs
}

// parse parses args and maps flag errors to exit errors. A nil error with
// done set means -h was requested.
func parse(fs *flag.FlagSet, args []string) (done bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, &ExitError{Code: exitUsage, Message: err.Error()}
	}
	return false, nil
}
