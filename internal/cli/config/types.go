// Package config provides configuration management for the localeid
// CLI. Values are layered from defaults, an optional localeid.yaml,
// LOCALEID_* environment variables and command-line flags, highest
// last.
package config

// Config holds the resolved CLI configuration.
type Config struct {
	// Output selects the rendering mode: auto, text, table or json.
	Output string `koanf:"output"`
	// Verbose enables debug logging to stderr.
	Verbose bool `koanf:"verbose"`
	// HistoryFile is where the REPL persists its input history.
	HistoryFile string `koanf:"history_file"`
}

// Defaults.
const (
	DefaultOutput      = "auto"
	DefaultHistoryFile = ".localeid_history"
)

// OutputModes lists the accepted values of the output setting.
var OutputModes = []string{"auto", "text", "table", "json"}
