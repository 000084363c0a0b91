package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/leutils/foundation/core/error"
	mdwlog "github.com/msto63/leutils/foundation/core/log"
	"github.com/msto63/leutils/foundation/tokeniser"
	mdwstringx "github.com/msto63/leutils/foundation/utils/stringx"
	"github.com/msto63/leutils/internal/render"
	"github.com/msto63/leutils/pkg/core/logging"
)

type tokeniseOptions struct {
	file   string
	output string
}

func newTokeniseCmd(a *app) *cobra.Command {
	var opts tokeniseOptions

	cmd := &cobra.Command{
		Use:     "tokenise [line...]",
		Aliases: []string{"tokenize", "tok"},
		Short:   "Tokenise command lines",
		Long: `Tokenise splits command lines into arguments, flags and options.

Positional arguments are joined with a space and tokenised as one line; quote
the line to keep the shell from splitting it first. With --file every
non-blank line of the file is tokenised, otherwise lines are read from stdin.

The exit status is 2 when any line has an unclosed quote.`,
		Example: `  leutils tokenise 'cp -r "My Documents" --verbose'
  leutils tokenise -o json < commands.txt
  leutils tokenise -f commands.txt -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTokenise(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read lines from a file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "",
		"output format: text, json, yaml, toml or msgpack (default from config)")

	return cmd
}

func (a *app) runTokenise(cmd *cobra.Command, opts tokeniseOptions, args []string) error {
	formatName := opts.output
	if formatName == "" {
		formatName = a.cfg.Output.Format
	}
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return err
	}

	lines, err := readLines(cmd, opts.file, args)
	if err != nil {
		return err
	}

	timer := a.logger.StartTimer("tokenise").WithLevel(mdwlog.LevelDebug).WithField("lines", len(lines))

	results := make([]render.Result, 0, len(lines))
	failed := 0
	for i, line := range lines {
		tok, err := tokeniser.Tokenise(line)
		res := render.NewResult(line, tok, err)
		a.logger.Trace("line tokenised", mdwlog.Fields{
			"line":      i + 1,
			"arguments": len(res.Arguments),
			"flags":     len(res.Flags),
			"options":   len(res.Options),
		})
		if err != nil {
			failed++
			a.logger.WarnWithErr("line not tokenised", err, mdwlog.Fields{
				"line":     i + 1,
				"fragment": res.Fragment,
			})
		}
		results = append(results, res)
	}
	timer.Stop()

	out := cmd.OutOrStdout()
	renderer, err := render.New(format, a.renderOptions(out))
	if err != nil {
		return err
	}
	if err := renderer.Render(out, results); err != nil {
		return err
	}

	if failed > 0 {
		return mdwerror.New(fmt.Sprintf("%d of %d lines have an unclosed quote", failed, len(lines))).
			WithCode(mdwerror.CodeUnclosedQuote).
			WithOperation("cmd.tokenise").
			WithDetails(map[string]interface{}{
				"failed": failed,
				"lines":  len(lines),
			})
	}
	return nil
}

// renderOptions enables colour and width only for terminals
func (a *app) renderOptions(out io.Writer) render.Options {
	f, ok := out.(*os.File)
	if !ok || !logging.IsTerminal(f) {
		return render.Options{}
	}
	return render.Options{
		Color: a.cfg.Output.Color,
		Width: render.TerminalWidth(f),
	}
}

// readLines collects the input lines from args, a file or stdin
func readLines(cmd *cobra.Command, file string, args []string) ([]string, error) {
	if len(args) > 0 {
		if file != "" {
			return nil, mdwerror.New("positional lines and --file are mutually exclusive").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("cmd.readLines")
		}
		return []string{strings.Join(args, " ")}, nil
	}

	var in io.Reader = cmd.InOrStdin()
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			code := mdwerror.CodeInvalidInput
			if os.IsNotExist(err) {
				code = mdwerror.CodeNotFound
			}
			return nil, mdwerror.Wrap(err, "cannot open input file").
				WithCode(code).
				WithOperation("cmd.readLines").
				WithDetail("file", file)
		}
		defer f.Close()
		in = f
	}

	lines := make([]string, 0)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if mdwstringx.IsBlank(line) {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, mdwerror.Wrap(err, "failed to read input").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.readLines")
	}
	return lines, nil
}
