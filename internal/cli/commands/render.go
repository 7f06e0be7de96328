package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mlocati/gettext-unicode-locale-id/internal/cli/output"
	"github.com/mlocati/gettext-unicode-locale-id/pkg/localeid"
)

// report holds the outcome of running one identifier through both
// grammars, the way the reference driver dumps every test input.
type report struct {
	Input   string        `json:"input"`
	Gettext *parseOutcome `json:"gettext"`
	Unicode *parseOutcome `json:"unicode"`
}

// parseOutcome is one grammar's view of an identifier.
type parseOutcome struct {
	Locale    *localeid.Locale `json:"locale,omitempty"`
	Error     string           `json:"error,omitempty"`
	GettextID string           `json:"gettext_id,omitempty"`
	UnicodeID string           `json:"unicode_id,omitempty"`
}

// inspectIdentifier parses id with both grammars and computes both
// serializations of whatever parsed.
func inspectIdentifier(id string) *report {
	return &report{
		Input:   id,
		Gettext: outcomeOf(localeid.ParseGettext(id)),
		Unicode: outcomeOf(localeid.ParseUnicode(id)),
	}
}

func outcomeOf(loc *localeid.Locale, err error) *parseOutcome {
	if err != nil {
		return &parseOutcome{Error: err.Error()}
	}
	out := &parseOutcome{Locale: loc}
	// Serialization failures here just mean the record is not complete
	// for that notation; the field stays empty.
	if s, err := loc.GettextID(); err == nil {
		out.GettextID = s
	}
	if s, err := loc.UnicodeID(); err == nil {
		out.UnicodeID = s
	}
	return out
}

// renderReports writes reports in the resolved output mode.
func renderReports(w io.Writer, reports []*report, mode output.Mode) error {
	if mode == output.ModeJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	for _, rep := range reports {
		if mode == output.ModeTable {
			renderReportTable(w, rep)
		} else {
			renderReportText(w, rep)
		}
	}
	return nil
}

func renderReportTable(w io.Writer, rep *report) {
	_, _ = fmt.Fprintln(w, rep.Input)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Field", "Gettext parse", "Unicode parse"})

	field := func(name string, get func(*parseOutcome) string) {
		t.AppendRow(table.Row{name, get(rep.Gettext), get(rep.Unicode)})
	}
	field("status", func(o *parseOutcome) string {
		if o.Error != "" {
			return "invalid"
		}
		return "ok"
	})
	field("root", func(o *parseOutcome) string {
		if o.Locale != nil && o.Locale.Root {
			return "yes"
		}
		return ""
	})
	field("language", localeField(func(l *localeid.Locale) string { return l.Language }))
	field("script", localeField(func(l *localeid.Locale) string { return l.Script }))
	field("territory", localeField(func(l *localeid.Locale) string { return l.Territory }))
	field("codeset", localeField(func(l *localeid.Locale) string { return l.Codeset }))
	field("modifier", localeField(func(l *localeid.Locale) string { return l.Modifier }))
	field("variants", localeField(func(l *localeid.Locale) string { return strings.Join(l.Variants, " ") }))
	field("gettext ID", func(o *parseOutcome) string { return o.GettextID })
	field("unicode ID", func(o *parseOutcome) string { return o.UnicodeID })

	t.Render()
}

func localeField(get func(*localeid.Locale) string) func(*parseOutcome) string {
	return func(o *parseOutcome) string {
		if o.Locale == nil {
			return ""
		}
		return get(o.Locale)
	}
}

func renderReportText(w io.Writer, rep *report) {
	_, _ = fmt.Fprintln(w, rep.Input)
	writeOutcomeText(w, "gettext", rep.Gettext)
	writeOutcomeText(w, "unicode", rep.Unicode)
}

func writeOutcomeText(w io.Writer, notation string, o *parseOutcome) {
	if o.Error != "" {
		_, _ = fmt.Fprintf(w, "  %s: not a valid identifier\n", notation)
		return
	}
	_, _ = fmt.Fprintf(w, "  %s: %s\n", notation, describeLocale(o.Locale))
	if o.GettextID != "" {
		_, _ = fmt.Fprintf(w, "    gettext ID: %s\n", o.GettextID)
	}
	if o.UnicodeID != "" {
		_, _ = fmt.Fprintf(w, "    unicode ID: %s\n", o.UnicodeID)
	}
}

// describeLocale renders the present fields of a record on one line.
func describeLocale(l *localeid.Locale) string {
	var parts []string
	if l.Root {
		parts = append(parts, "root")
	}
	if l.Language != "" {
		parts = append(parts, "language="+l.Language)
	}
	if l.Script != "" {
		parts = append(parts, "script="+l.Script)
	}
	if l.Territory != "" {
		parts = append(parts, "territory="+l.Territory)
	}
	if l.Codeset != "" {
		parts = append(parts, "codeset="+l.Codeset)
	}
	if l.Modifier != "" {
		parts = append(parts, "modifier="+l.Modifier)
	}
	if len(l.Variants) > 0 {
		parts = append(parts, "variants="+strings.Join(l.Variants, ","))
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " ")
}
