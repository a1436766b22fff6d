// Package cli handles command-line parsing and dispatch for maketree.
package cli

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/NielsdaWheelz/maketree/internal/commands"
	"github.com/NielsdaWheelz/maketree/internal/config"
	"github.com/NielsdaWheelz/maketree/internal/core"
	"github.com/NielsdaWheelz/maketree/internal/errors"
	"github.com/NielsdaWheelz/maketree/internal/version"
)

const usageText = `maketree - print a random tree of named nodes as JSON

usage: maketree [options]

builds a tree up to 16 levels deep, where each node has a random name and
title and 0-5 children, and writes it to stdout as 4-space-indented JSON.

options:
  -h, --help      show this help
  -v, --version   show version
`

// Env carries the dependencies a run needs.
// Zero fields are filled with the production defaults.
type Env struct {
	Source core.Source
	Logger *zap.Logger
}

// Run parses arguments and generates a tree using the system random source.
// Returns an error if the run fails; the caller should print the error and exit.
func Run(args []string, stdout, stderr io.Writer) error {
	return RunWith(args, stdout, stderr, Env{})
}

// RunWith is Run with injectable dependencies.
func RunWith(args []string, stdout, stderr io.Writer, env Env) error {
	if len(args) > 0 {
		switch args[0] {
		case "-h", "--help":
			fmt.Fprint(stdout, usageText)
			return nil
		case "-v", "--version":
			fmt.Fprintf(stdout, "maketree %s\n", version.Version)
			return nil
		default:
			fmt.Fprint(stdout, usageText)
			return errors.New(errors.EUsage, fmt.Sprintf("unexpected argument: %s", args[0]))
		}
	}

	if env.Source == nil {
		env.Source = core.NewRandomSource()
	}
	if env.Logger == nil {
		env.Logger = newLogger(stderr)
		defer env.Logger.Sync()
	}

	return commands.Generate(env.Source, config.Defaults(), env.Logger, stdout)
}

// newLogger logs warnings and above to stderr so stdout only ever carries the document.
func newLogger(stderr io.Writer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	c := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(stderr), zapcore.WarnLevel)
	return zap.New(c).Named("maketree")
}
