// Package app is the command line of contigsampler, built on cobra with
// settings resolved through viper (flags > environment > config file >
// defaults).
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"contigsampler/internal/cmdutil"
	"contigsampler/internal/config"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad flags or configuration
	ExitRuntime  = 3 // I/O or write failures
	ExitCanceled = 130
)

// exitError carries the exit code of a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageErr(err error) error   { return &exitError{code: ExitUsage, err: err} }
func runtimeErr(err error) error { return &exitError{code: ExitRuntime, err: err} }

// env is the state shared by the commands of one invocation.
type env struct {
	v       *viper.Viper
	cfgFile string
	quiet   bool
	stdout  io.Writer
	stderr  io.Writer

	cfg      config.Config
	log      *logrus.Logger
	closeLog func() error
}

// setup resolves the configuration and builds the logger; it runs before
// every command except version and help.
func (e *env) setup() error {
	cfg, err := config.Load(e.v, e.cfgFile)
	if err != nil {
		return usageErr(err)
	}
	log, closeLog, err := cmdutil.NewLogger(e.stderr, cmdutil.LogOptions{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Quiet:  e.quiet,
	})
	if err != nil {
		return usageErr(err)
	}
	e.cfg, e.log, e.closeLog = cfg, log, closeLog
	return nil
}

// RunContext executes the command line argv and returns the exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	e := &env{v: config.New(), stdout: stdout, stderr: stderr}
	root := newRootCmd(e)
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if e.closeLog != nil {
		_ = e.closeLog()
	}
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	if e.log != nil {
		e.log.Error(err)
	} else {
		fmt.Fprintln(stderr, "error:", err)
	}
	var xe *exitError
	if errors.As(err, &xe) {
		return xe.code
	}
	// flag parsing and argument validation errors come straight from cobra
	return ExitUsage
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// needsSetup is the PersistentPreRunE of commands that use the configuration.
func (e *env) needsSetup(*cobra.Command, []string) error { return e.setup() }
