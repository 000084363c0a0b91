package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/leutils/foundation/core/error"
	mdwlog "github.com/msto63/leutils/foundation/core/log"
	mdwstringx "github.com/msto63/leutils/foundation/utils/stringx"
	"github.com/msto63/leutils/pkg/core/config"
	"github.com/msto63/leutils/pkg/core/logging"
)

// globalOptions holds the persistent flags
type globalOptions struct {
	cfgFile   string
	verbose   bool
	logFormat string
}

// app is the state shared by all subcommands once the root has run
type app struct {
	opts   globalOptions
	cfg    *config.Config
	logger *mdwlog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: mdwlog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "leutils",
		Short: "Command line tokeniser",
		Long: `leutils splits command lines into arguments the way a shell-like
prompt would: spaces separate arguments, double quotes group them and a
backslash escapes a double quote. Arguments starting with a dash and a letter
are flags; arguments starting with two dashes are options.

Commands:
  tokenise     - Tokenise lines from arguments, a file or stdin
  interactive  - Tokenise while typing
  version      - Show version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.opts.cfgFile, "config", "", "config file (default: ./leutils.toml or the user config directory)")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "debug logging")
	flags.StringVar(&a.opts.logFormat, "log-format", "", "log format: json, text, console or logfmt")

	rootCmd.AddCommand(
		newTokeniseCmd(a),
		newInteractiveCmd(a),
		newVersionCmd(a),
	)

	return rootCmd
}

// setup loads the configuration and builds the logger
func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.opts.cfgFile)
	if err != nil {
		return err
	}

	if a.opts.verbose {
		cfg.Log.Level = "debug"
	}
	if a.opts.logFormat != "" {
		if _, err := mdwlog.ParseFormat(a.opts.logFormat); err != nil {
			return mdwerror.Wrap(err, "invalid --log-format").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("cmd.setup")
		}
		cfg.Log.Format = a.opts.logFormat
	}

	a.cfg = cfg
	a.logger = logging.NewLogger(logging.LoggerConfig{
		ServiceName: config.AppName,
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      stderr,
		NoColor:     !cfg.Output.Color,
	})

	a.logger.Debug("configuration loaded", mdwlog.Fields{
		"source":        mdwstringx.FirstNonBlank(cfg.Source, "defaults"),
		"output_format": cfg.Output.Format,
	})
	return nil
}

// Execute runs the CLI with the process arguments
func Execute() error {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

func printError(w io.Writer, err error) {
	label := "Error:"
	if logging.IsTerminal(w) {
		label = color.New(color.FgRed, color.Bold).Sprint(label)
	}
	fmt.Fprintf(w, "%s %v\n", label, err)
}
