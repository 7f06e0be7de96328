package commands

import (
	"fmt"
	"io"

	"github.com/mlocati/gettext-unicode-locale-id/internal/cli/output"
	"github.com/mlocati/gettext-unicode-locale-id/pkg/localeid"
	"github.com/spf13/cobra"
)

// acceptanceCase pins whether an identifier is valid under each grammar.
type acceptanceCase struct {
	id        string
	gettextOK bool
	unicodeOK bool
}

// acceptanceCases is the reference driver's fixture list, extended with
// the root, numeric-region and variant-shape fixtures.
var acceptanceCases = []acceptanceCase{
	{"it_IT.utf8@euro", true, false},
	{"it_IT.utf8", true, false},
	{"it_IT@euro", true, false},
	{"it@euro", true, false},
	{"it.utf8", true, false},
	{"it_IT", true, true},
	{"it", true, true},

	{"it-Latn-IT-POSIX-NYNORSK", false, true},
	{"it-Latn-IT-POSIX", false, true},
	{"it-Latn-IT-NYNORSK", false, true},
	{"it-Latn-IT", false, true},
	{"it-Latn-POSIX-NYNORSK", false, true},
	{"it-Latn-POSIX", false, true},
	{"it-Latn-NYNORSK", false, true},
	{"it-Latn", false, true},
	{"it-IT-POSIX-NYNORSK", false, true},
	{"it-IT-POSIX", false, true},
	{"it-IT-NYNORSK", false, true},
	{"it-IT", false, true},
	{"it-POSIX-NYNORSK", false, true},
	{"it-POSIX", false, true},
	{"it-NYNORSK", false, true},

	{"Latn-IT-POSIX-NYNORSK", false, true},
	{"Latn-IT-POSIX", false, true},
	{"Latn-IT-NYNORSK", false, true},
	{"Latn-IT", false, true},
	{"Latn-POSIX-NYNORSK", false, true},
	{"Latn-POSIX", false, true},
	{"Latn-NYNORSK", false, true},
	{"Latn", true, true},

	{"root", false, true},
	{"root-IT", false, true},
	{"root-Latn", false, false},
	{"en-123", false, true},
	{"en-12x", false, false},
	{"it-IT-1abc", false, true},
	{"it-IT-abcd", false, false},
	{"it.utf8_IT", false, false},

	{"", false, false},
	{" ", false, false},
	{"  ", false, false},
	{"foo@bar@baz", false, false},
}

// conversionCase pins the serialized form of a parsed identifier.
type conversionCase struct {
	id   string
	from string
	to   string
	want string
}

var conversionCases = []conversionCase{
	{"it@latin", "gettext", "unicode", "it_Latn"},
	{"it-Latn-IT", "unicode", "gettext", "it_IT@latin"},
	{"it_IT.utf8@euro", "gettext", "gettext", "it_IT.utf8@euro"},
	{"it-Latn-IT-POSIX-NYNORSK", "unicode", "unicode", "it_Latn_IT_POSIX_NYNORSK"},
	{"root-IT", "unicode", "unicode", "root_IT"},
	{"en-123", "unicode", "unicode", "en_123"},
}

// crosswalkCase pins one crosswalk lookup.
type crosswalkCase struct {
	lookup string
	input  string
	want   string
}

var crosswalkCases = []crosswalkCase{
	{"modifier-to-script", "latin", "Latn"},
	{"script-to-modifier", "Latn", "latin"},
	{"modifier-to-script", "georgian", "Geok"},
	{"script-to-modifier", "Geor", "georgian"},
}

// NewSelftestCommand creates the selftest command.
func NewSelftestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in conversion self test",
		Long: `Feed a fixed list of identifiers to both parsers and serializers
and compare the results against literal expectations. Exits non-zero on
any mismatch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSelftest(cmd.OutOrStdout())
		},
	}
}

func runSelftest(w io.Writer) error {
	styles := output.NewStyles()
	failures := 0
	check := func(label string, ok bool, detail string) {
		if ok {
			_, _ = fmt.Fprintf(w, "%s %s\n", styles.Pass.Render("ok"), label)
			return
		}
		failures++
		_, _ = fmt.Fprintf(w, "%s %s: %s\n", styles.Fail.Render("FAIL"), label, detail)
	}

	for _, tc := range acceptanceCases {
		label := fmt.Sprintf("%q", tc.id)
		_, gettextErr := localeid.ParseGettext(tc.id)
		check(label+" gettext", (gettextErr == nil) == tc.gettextOK,
			fmt.Sprintf("gettext acceptance, want valid=%v", tc.gettextOK))
		_, unicodeErr := localeid.ParseUnicode(tc.id)
		check(label+" unicode", (unicodeErr == nil) == tc.unicodeOK,
			fmt.Sprintf("unicode acceptance, want valid=%v", tc.unicodeOK))
	}

	for _, tc := range conversionCases {
		label := fmt.Sprintf("%q -> %s", tc.id, tc.to)
		loc, _, err := parseAs(tc.id, tc.from)
		if err != nil {
			check(label, false, err.Error())
			continue
		}
		var got string
		if tc.to == "gettext" {
			got, err = loc.GettextID()
		} else {
			got, err = loc.UnicodeID()
		}
		if err != nil {
			check(label, false, err.Error())
			continue
		}
		check(label, got == tc.want, fmt.Sprintf("got %q, want %q", got, tc.want))
	}

	for _, tc := range crosswalkCases {
		var got string
		if tc.lookup == "modifier-to-script" {
			got, _ = localeid.ModifierToScript(tc.input)
		} else {
			got, _ = localeid.ScriptToModifier(tc.input)
		}
		check(fmt.Sprintf("%s %q", tc.lookup, tc.input), got == tc.want,
			fmt.Sprintf("got %q, want %q", got, tc.want))
	}

	if failures > 0 {
		return fmt.Errorf("self test failed: %d mismatch(es)", failures)
	}
	_, _ = fmt.Fprintf(w, "\n%s\n", styles.Pass.Render("All ok."))
	return nil
}
