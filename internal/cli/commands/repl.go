package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mlocati/gettext-unicode-locale-id/internal/cli/config"
	"github.com/mlocati/gettext-unicode-locale-id/pkg/localeid"
	"github.com/spf13/cobra"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse and convert locale identifiers",
		Long: `Start an interactive session. Every line is run through both
parsers and the result of each grammar is shown, together with both
serializations. Dot-commands restrict the parse to one grammar.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
}

func runREPL(cmd *cobra.Command) error {
	cfg := config.GetCurrentConfig()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "localeid> ",
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "localeid REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type an identifier, .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if line == ".quit" || line == ".exit" {
				break
			}
			handleDotCommand(cmd, line)
			continue
		}

		renderReportText(cmd.OutOrStdout(), inspectIdentifier(line))
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

func handleDotCommand(cmd *cobra.Command, line string) {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".help":
		printREPLHelp(cmd.OutOrStdout())

	case ".gettext", ".unicode":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Usage: %s <identifier>\n", command)
			return
		}
		id := parts[1]
		var (
			loc *localeid.Locale
			err error
		)
		if command == ".gettext" {
			loc, err = localeid.ParseGettext(id)
		} else {
			loc, err = localeid.ParseUnicode(id)
		}
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return
		}
		writeOutcomeText(cmd.OutOrStdout(), strings.TrimPrefix(command, "."), outcomeOf(loc, nil))

	case ".clear":
		fmt.Print("\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
	}
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help            Show this help message
  .gettext <id>    Parse with the Gettext grammar only
  .unicode <id>    Parse with the Unicode grammar only
  .clear           Clear the screen
  .quit / .exit    Exit the REPL

Tips:
  - A bare line is parsed with both grammars
  - Use arrow keys to navigate history
`
	_, _ = fmt.Fprintln(w, help)
}

// newREPLCompleter completes the dot-commands.
func newREPLCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".gettext"),
		readline.PcItem(".unicode"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
