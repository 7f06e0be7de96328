// Package output handles rendering mode selection and terminal styling
// for the localeid CLI.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Mode is a rendering mode.
type Mode string

// Rendering modes.
const (
	ModeAuto  Mode = "auto"
	ModeText  Mode = "text"
	ModeTable Mode = "table"
	ModeJSON  Mode = "json"
)

// Renderer pairs the output writers with a resolved rendering mode.
type Renderer struct {
	Out  io.Writer
	Err  io.Writer
	mode Mode
}

// NewRenderer creates a renderer. An empty mode means auto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{Out: out, Err: errOut, mode: mode}
}

// Mode resolves the rendering mode. Auto picks table when stdout is a
// terminal and text otherwise, so piped output stays grep-friendly.
func (r *Renderer) Mode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.Out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeTable
	}
	return ModeText
}

// Styles holds the lipgloss styles shared by the commands.
type Styles struct {
	Pass  lipgloss.Style
	Fail  lipgloss.Style
	Title lipgloss.Style
	Muted lipgloss.Style
}

// NewStyles builds the default style set.
func NewStyles() *Styles {
	return &Styles{
		Pass:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Fail:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Title: lipgloss.NewStyle().Bold(true),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
