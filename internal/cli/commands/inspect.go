package commands

import (
	"github.com/mlocati/gettext-unicode-locale-id/internal/cli/config"
	"github.com/mlocati/gettext-unicode-locale-id/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [identifiers...]",
		Short: "Show how each identifier parses under both grammars",
		Long: `Run each identifier through the Gettext parser and the Unicode
parser and dump every chunk of whatever parsed, together with both
serializations when they are defined. Identifiers that are valid in
neither notation are reported as invalid, not treated as an error.`,
		Example: `  localeid inspect it_IT.utf8@euro it-Latn-IT root
  localeid inspect -o json "it@latin"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetCurrentConfig()
			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))

			reports := make([]*report, 0, len(args))
			for _, id := range args {
				reports = append(reports, inspectIdentifier(id))
			}
			return renderReports(renderer.Out, reports, renderer.Mode())
		},
	}
}
