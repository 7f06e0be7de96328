// Package main provides end-to-end tests for the localeid CLI.
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mlocati/gettext-unicode-locale-id/internal/cli"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}
	if !strings.Contains(out, "localeid") {
		t.Errorf("version output should contain 'localeid', got: %s", out)
	}
}

func TestHelpCommand(t *testing.T) {
	out, err := execute(t, "--help")
	if err != nil {
		t.Errorf("help command error = %v", err)
	}
	for _, sub := range []string{"convert", "inspect", "selftest", "repl"} {
		if !strings.Contains(out, sub) {
			t.Errorf("help output should mention %q, got: %s", sub, out)
		}
	}
}

func TestConvertCommand(t *testing.T) {
	out, err := execute(t, "convert", "--to", "unicode", "it@latin")
	if err != nil {
		t.Errorf("convert command error = %v", err)
	}
	if !strings.Contains(out, "it_Latn") {
		t.Errorf("convert output should contain 'it_Latn', got: %s", out)
	}
}

func TestConvertCommandInvalidIdentifier(t *testing.T) {
	_, err := execute(t, "convert", "foo@bar@baz")
	if err == nil {
		t.Error("convert should fail for an identifier invalid in both notations")
	}
}

func TestInspectCommandJSON(t *testing.T) {
	out, err := execute(t, "--output", "json", "inspect", "it-Latn-IT")
	if err != nil {
		t.Errorf("inspect command error = %v", err)
	}
	if !strings.Contains(out, `"gettext_id": "it_IT@latin"`) {
		t.Errorf("inspect output should contain the derived gettext ID, got: %s", out)
	}
}

func TestSelftestCommand(t *testing.T) {
	out, err := execute(t, "selftest")
	if err != nil {
		t.Errorf("selftest command error = %v, output:\n%s", err, out)
	}
	if !strings.Contains(out, "All ok.") {
		t.Errorf("selftest output should end with 'All ok.', got: %s", out)
	}
}
