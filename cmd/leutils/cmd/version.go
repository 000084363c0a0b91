package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/msto63/leutils/pkg/core/logging"
	"github.com/msto63/leutils/pkg/core/version"
)

func newVersionCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			name := "leutils"
			if a.cfg.Output.Color && logging.IsTerminal(out) {
				name = color.New(color.FgMagenta, color.Bold).Sprint(name)
			}

			fmt.Fprintf(out, "%s v%s\n", name, info.Version)
			fmt.Fprintf(out, "  Git Commit: %s\n", info.Commit)
			fmt.Fprintf(out, "  Build Date: %s\n", info.Date)
			fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
			fmt.Fprintf(out, "  Tokeniser:  %s\n", version.ComponentVersion("tokeniser"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
