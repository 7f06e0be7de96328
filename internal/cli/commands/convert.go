package commands

import (
	"encoding/json"
	"fmt"

	"github.com/mlocati/gettext-unicode-locale-id/internal/cli/config"
	"github.com/mlocati/gettext-unicode-locale-id/internal/cli/output"
	"github.com/mlocati/gettext-unicode-locale-id/pkg/localeid"
	"github.com/spf13/cobra"
)

// conversion is the JSON shape of one converted identifier.
type conversion struct {
	Input    string `json:"input"`
	Notation string `json:"notation"`
	Gettext  string `json:"gettext,omitempty"`
	Unicode  string `json:"unicode,omitempty"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "convert [identifiers...]",
		Short: "Convert locale identifiers between notations",
		Long: `Parse each identifier and print it in the requested notation.

With --from auto (the default) the Gettext grammar is tried first and
the Unicode grammar second. Serializations that are undefined for a
record (for instance the Gettext form of a root locale) are skipped in
--to both mode and fail in single-target mode.`,
		Example: `  localeid convert it_IT.utf8@euro
  localeid convert --to unicode it@latin
  localeid convert --from unicode --to gettext it-Latn-IT`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateChoice("from", from, "auto", "gettext", "unicode"); err != nil {
				return err
			}
			if err := validateChoice("to", to, "both", "gettext", "unicode"); err != nil {
				return err
			}

			cfg := config.GetCurrentConfig()
			logger := config.GetLogger(cmd.Context())
			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))

			var results []conversion
			for _, id := range args {
				loc, notation, err := parseAs(id, from)
				if err != nil {
					return err
				}
				logger.Debug("parsed identifier", "id", id, "notation", notation)

				res := conversion{Input: id, Notation: notation}
				if to == "gettext" || to == "both" {
					s, err := loc.GettextID()
					if err != nil && to == "gettext" {
						return fmt.Errorf("%s: %w", id, err)
					}
					res.Gettext = s
				}
				if to == "unicode" || to == "both" {
					s, err := loc.UnicodeID()
					if err != nil && to == "unicode" {
						return fmt.Errorf("%s: %w", id, err)
					}
					res.Unicode = s
				}
				results = append(results, res)
			}

			if renderer.Mode() == output.ModeJSON {
				enc := json.NewEncoder(renderer.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			for _, res := range results {
				if res.Gettext != "" {
					_, _ = fmt.Fprintf(renderer.Out, "%s\tgettext\t%s\n", res.Input, res.Gettext)
				}
				if res.Unicode != "" {
					_, _ = fmt.Fprintf(renderer.Out, "%s\tunicode\t%s\n", res.Input, res.Unicode)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "auto", "Source notation (auto|gettext|unicode)")
	cmd.Flags().StringVar(&to, "to", "both", "Target notation (both|gettext|unicode)")

	return cmd
}

// parseAs parses id in the requested notation. Auto tries Gettext
// first, then Unicode, mirroring the reference driver which runs every
// input through both parsers.
func parseAs(id, from string) (*localeid.Locale, string, error) {
	switch from {
	case "gettext":
		loc, err := localeid.ParseGettext(id)
		return loc, "gettext", err
	case "unicode":
		loc, err := localeid.ParseUnicode(id)
		return loc, "unicode", err
	default:
		if loc, err := localeid.ParseGettext(id); err == nil {
			return loc, "gettext", nil
		}
		loc, err := localeid.ParseUnicode(id)
		if err != nil {
			return nil, "", fmt.Errorf("%q is valid in neither notation: %w", id, localeid.ErrInvalid)
		}
		return loc, "unicode", nil
	}
}

// validateChoice rejects flag values outside the accepted set.
func validateChoice(flag, value string, accepted ...string) error {
	for _, a := range accepted {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid --%s value %q", flag, value)
}
