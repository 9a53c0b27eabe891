package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the root configuration for flowtime, stored in
// $XDG_CONFIG_HOME/flowtime/config.json. The file supports single-line
// // comments for documentation purposes.
type Config struct {
	// DataDir overrides the directory holding statistics.xml.
	// Empty = $XDG_DATA_HOME/flowtime (or ~/.local/share/flowtime).
	DataDir string `json:"data_dir"`
	// Timezone is the IANA timezone for the reference clock deciding which
	// record is today (e.g. "Europe/Madrid"). Empty = UTC.
	Timezone string `json:"timezone"`
}

// ReferenceNow returns the load-time reference clock. Empty timezone means
// UTC, which is also how zone-less dates in the statistics file are read.
func (c Config) ReferenceNow() (time.Time, error) {
	if c.Timezone == "" {
		return time.Now().UTC(), nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q in config: %w", c.Timezone, err)
	}
	return time.Now().In(loc), nil
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// flowtime configuration – config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise flowtime behaviour.
{
  // Directory holding statistics.xml.
  // Leave empty to use $XDG_DATA_HOME/flowtime (~/.local/share/flowtime).
  "data_dir": "",

  // IANA timezone used to decide which day record counts as "today",
  // e.g. "Europe/Madrid". Leave empty to use UTC.
  "timezone": ""
}
`

// configFilePath returns the path to the config file, honoring
// XDG_CONFIG_HOME and falling back to ~/.config/flowtime/config.json.
func configFilePath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "flowtime", "config.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "flowtime", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads the config file, creating it with annotated defaults on first
// run. Lines starting with // are treated as comments and stripped before
// JSON parsing. Callers always get a usable Config, even alongside an error.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
