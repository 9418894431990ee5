// Package cli implements the ideaplan command line.
package cli

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-ideaplan/internal/config"
	"github.com/goliatone/go-ideaplan/internal/output"
	"github.com/goliatone/go-ideaplan/pkg/export"
	"github.com/goliatone/go-ideaplan/pkg/orchestrator"
	"github.com/goliatone/go-ideaplan/pkg/prompt"
)

const longHelp = `ideaplan turns a one-sentence project idea into a project plan:
an analysis, a flowchart, a slide deck, an OpenAPI sketch and a code scaffold.

Workflow:
  ideaplan analyze "an online store for vintage records"
  ideaplan render  "an online store" -r deck-html -o deck.html
  ideaplan export  "an online store" -d out/
  ideaplan slides                  Interactive session
  ideaplan serve                   HTTP API and websocket stream

Ideas can be passed as arguments or typed at the prompt.`

// Option customises the root command, mainly for tests.
type Option func(*app)

// WithStreams redirects standard output and error.
func WithStreams(out, errOut io.Writer) Option {
	return func(a *app) {
		if out != nil {
			a.out = out
		}
		if errOut != nil {
			a.errOut = errOut
		}
	}
}

// WithPromptDriver replaces the survey prompts.
func WithPromptDriver(d prompt.PromptDriver) Option {
	return func(a *app) {
		if d != nil {
			a.driver = d
		}
	}
}

// WithClipboard replaces the OSC 52 terminal clipboard.
func WithClipboard(c export.Clipboard) Option {
	return func(a *app) {
		if c != nil {
			a.clipboard = c
		}
	}
}

// app carries the state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool

	out       io.Writer
	errOut    io.Writer
	driver    prompt.PromptDriver
	clipboard export.Clipboard

	cfg     *config.Config
	orch    *orchestrator.Orchestrator
	logger  *log.Logger
	printer *output.Printer
}

// NewRootCommand builds the command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	if a.driver == nil {
		a.driver = prompt.NewSurveyDriver(a.out)
	}
	if a.clipboard == nil {
		a.clipboard = export.TerminalClipboard{W: a.errOut, Tmux: os.Getenv("TMUX") != ""}
	}

	root := &cobra.Command{
		Use:           "ideaplan",
		Short:         "Turn a project idea into a plan, diagram, deck and scaffold",
		Long:          longHelp,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "Config file path")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log progress to stderr")

	root.AddCommand(
		a.analyzeCommand(),
		a.renderCommand(),
		a.exportCommand(),
		a.slidesCommand(),
		a.renderersCommand(),
		a.serveCommand(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		output.New(os.Stderr).Error("%v", err)
		stop()
		os.Exit(1)
	}
}
