package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/leutils/foundation/core/error"
	mdwlog "github.com/msto63/leutils/foundation/core/log"
	"github.com/msto63/leutils/internal/tui/tokenview"
)

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i", "repl"},
		Short:   "Tokenise lines while typing",
		Long: `Starts an interactive view that tokenises the line as it is typed.

Keys:
  Enter       Commit the line to the history
  Up / Down   Browse the history
  Esc         Quit
  Ctrl+C      Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive(cmd)
		},
	}
}

func (a *app) runInteractive(cmd *cobra.Command) error {
	model := tokenview.New(tokenview.Config{
		Prompt:      a.cfg.Interactive.Prompt,
		HistorySize: a.cfg.Interactive.HistorySize,
		Color:       a.cfg.Output.Color,
	})

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	final, err := program.Run()
	if err != nil {
		return mdwerror.Wrap(err, "interactive session failed").
			WithCode(mdwerror.CodeInternal).
			WithOperation("cmd.interactive")
	}

	if m, ok := final.(tokenview.Model); ok {
		committed, failed := m.Stats()
		a.logger.Info("interactive session ended", mdwlog.Fields{
			"committed": committed,
			"failed":    failed,
		})
	}
	return nil
}
