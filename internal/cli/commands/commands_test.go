package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mlocati/gettext-unicode-locale-id/internal/cli/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConvertCommand(t *testing.T) {
	cmd := NewConvertCommand()

	assert.Equal(t, "convert [identifiers...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	flags := []string{"from", "to"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewInspectCommand(t *testing.T) {
	cmd := NewInspectCommand()

	assert.Equal(t, "inspect [identifiers...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
}

func TestNewSelftestCommand(t *testing.T) {
	cmd := NewSelftestCommand()

	assert.Equal(t, "selftest", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewREPLCommand(t *testing.T) {
	cmd := NewREPLCommand()

	assert.Equal(t, "repl", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestParseAs(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		from         string
		wantNotation string
		wantErr      bool
	}{
		{name: "auto prefers gettext", id: "it_IT", from: "auto", wantNotation: "gettext"},
		{name: "auto falls back to unicode", id: "it-Latn-IT", from: "auto", wantNotation: "unicode"},
		{name: "explicit gettext", id: "it@euro", from: "gettext", wantNotation: "gettext"},
		{name: "explicit unicode", id: "root-IT", from: "unicode", wantNotation: "unicode"},
		{name: "gettext rejects unicode separators", id: "it-IT", from: "gettext", wantErr: true},
		{name: "auto rejects both-invalid input", id: "foo@bar@baz", from: "auto", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, notation, err := parseAs(tt.id, tt.from)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, loc)
			assert.Equal(t, tt.wantNotation, notation)
		})
	}
}

func TestRunSelftest(t *testing.T) {
	var buf bytes.Buffer
	err := runSelftest(&buf)
	require.NoError(t, err, "built-in fixtures must pass:\n%s", buf.String())
	assert.Contains(t, buf.String(), "All ok.")
}

func TestInspectIdentifier(t *testing.T) {
	rep := inspectIdentifier("it_IT")
	require.NotNil(t, rep.Gettext)
	require.NotNil(t, rep.Unicode)
	assert.Empty(t, rep.Gettext.Error)
	assert.Empty(t, rep.Unicode.Error)
	assert.Equal(t, "it_IT", rep.Gettext.GettextID)
	assert.Equal(t, "it_IT", rep.Unicode.UnicodeID)

	rep = inspectIdentifier("it_IT.utf8@euro")
	assert.Empty(t, rep.Gettext.Error)
	assert.NotEmpty(t, rep.Unicode.Error, "codeset syntax is not a unicode tag")
}

func TestRenderReportsJSON(t *testing.T) {
	var buf bytes.Buffer
	reports := []*report{inspectIdentifier("it@latin")}
	require.NoError(t, renderReports(&buf, reports, output.ModeJSON))

	out := buf.String()
	assert.Contains(t, out, `"input": "it@latin"`)
	assert.Contains(t, out, `"unicode_id": "it_Latn"`)
}

func TestRenderReportsText(t *testing.T) {
	var buf bytes.Buffer
	reports := []*report{inspectIdentifier("it-Latn-IT")}
	require.NoError(t, renderReports(&buf, reports, output.ModeText))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "it-Latn-IT\n"))
	assert.Contains(t, out, "not a valid identifier")
	assert.Contains(t, out, "language=it script=Latn territory=IT")
	assert.Contains(t, out, "gettext ID: it_IT@latin")
}
