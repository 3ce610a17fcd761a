// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wangtaoking1/verbtree/errors"
	"github.com/wangtaoking1/verbtree/log"
	"github.com/wangtaoking1/verbtree/parser"
)

// App is the Interface of application.
type App interface {
	// Run launch the application.
	Run()

	// Command returns cobra command instance inside the application.
	Command() *cobra.Command

	// Parser returns the parser the application hands its arguments to.
	Parser() *parser.Parser
}

// app is the main structure of a cli application.
// It is recommended that an app be created with the app.NewApp() function.
type app struct {
	name        string
	short       string
	description string
	parser      *parser.Parser
	runFunc     RunFunc
	silence     bool
	noConfig    bool
	cmd         *cobra.Command
}

var _ App = (*app)(nil)

// Option defines optional parameters for initializing the application structure.
type Option func(*app)

// RunFunc is called after a successful parse with the parser holding the
// bindings. It is not called for help or verb tree requests.
type RunFunc func(p *parser.Parser) error

// WithRunFunc is used to set the application startup callback function option.
func WithRunFunc(run RunFunc) Option {
	return func(a *app) {
		a.runFunc = run
	}
}

// WithParser sets the parser that receives the command line. Without it the
// application gets an empty parser named after itself.
func WithParser(p *parser.Parser) Option {
	return func(a *app) {
		a.parser = p
	}
}

// WithDescription is used to set the description of the application.
func WithDescription(desc string) Option {
	return func(a *app) {
		a.description = desc
	}
}

// WithSilence sets the application to silent mode, in which the program startup
// information and configuration information are not logged.
func WithSilence() Option {
	return func(a *app) {
		a.silence = true
	}
}

// WithNoConfig set the application does not read a settings file.
func WithNoConfig() Option {
	return func(a *app) {
		a.noConfig = true
	}
}

// NewApp creates a new application instance based on the given application name,
// binary name, and other options.
func NewApp(name string, short string, opts ...Option) App {
	a := &app{
		name:  name,
		short: short,
	}

	for _, o := range opts {
		o(a)
	}
	if a.parser == nil {
		a.parser = parser.New(FormatExecName(name))
	}

	a.buildCommand()

	return a
}

func (a *app) buildCommand() {
	cmd := &cobra.Command{
		Use:   FormatExecName(a.name),
		Short: a.short,
		Long:  a.description,
		// the parser owns every argument, including help requests
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		// stop printing usage when the command errors
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runCommand,
	}
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	addCmdTemplate(cmd, a.parser)
	a.cmd = cmd
}

func (a *app) Run() {
	if err := a.cmd.Execute(); err != nil {
		printError(a.cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (a *app) Command() *cobra.Command {
	return a.cmd
}

func (a *app) Parser() *parser.Parser {
	return a.parser
}

func (a *app) runCommand(cmd *cobra.Command, args []string) error {
	settings := NewSettings()
	if !a.noConfig {
		var err error
		if settings, err = loadSettings(a.name); err != nil {
			return err
		}
	}
	if errs := settings.Validate(); len(errs) != 0 {
		return errors.NewAggregate(errs)
	}
	log.Init(settings.Log)
	defer log.Flush()

	ctx := log.WithContext(cmd.Context(), "app", a.name)
	cmd.SetContext(ctx)
	if !a.silence {
		logger := log.From(ctx)
		printWorkingDir(cmd.ErrOrStderr())
		logger.Infof("%v Starting %s ...", progressMessage, a.short)
		if !a.noConfig {
			logger.Infof("%v Config file used: `%s`", progressMessage, settings.configFile)
			logger.Infof("%v Config: `%s`", progressMessage, settings.String())
		}
	}
	settings.apply(a.parser)
	a.parser.SetOutput(cmd.OutOrStdout())

	outcome, err := a.parser.Parse(args)
	if err != nil {
		return err
	}
	if outcome != parser.Parsed || a.runFunc == nil {
		return nil
	}

	return a.runFunc(a.parser)
}

// printError writes err and, for parse and validation errors, the criteria of
// the offending option.
func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%v %v\n", color.RedString("Error:"), err)
	if details := errors.Details(err); details != "" {
		writeString(w, details)
	}
}
