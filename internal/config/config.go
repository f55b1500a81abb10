// Package config loads editor options from an optional TOML file with
// PROMPTBOX_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the root configuration document.
type Config struct {
	Editor Editor `toml:"editor"`
}

// Editor holds the input-widget options.
type Editor struct {
	// Placeholder is shown while the buffer is empty and unfocused.
	Placeholder string `toml:"placeholder"`

	// MaxLines soft-caps the document height; 0 disables the cap.
	MaxLines int `toml:"max_lines"`

	// HistorySize caps the submitted-value recall list.
	HistorySize int `toml:"history_size"`

	// HistoryFile, when set, enables persistence of submitted values.
	HistoryFile string `toml:"history_file"`

	// UndoLimit bounds the undo/redo stacks.
	UndoLimit int `toml:"undo_limit"`

	// UndoWindowMS is the undo coalescing interval in milliseconds.
	UndoWindowMS int `toml:"undo_window_ms"`

	// TabWidth is the tab stop width used for display.
	TabWidth int `toml:"tab_width"`

	// ViewportHeight is the visible panel height in lines.
	ViewportHeight int `toml:"viewport_height"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: Editor{
			Placeholder:    "Type a message...",
			MaxLines:       0,
			HistorySize:    100,
			UndoLimit:      100,
			UndoWindowMS:   500,
			TabWidth:       4,
			ViewportHeight: 6,
		},
	}
}

// UndoWindow returns the coalescing interval as a duration.
func (e Editor) UndoWindow() time.Duration {
	return time.Duration(e.UndoWindowMS) * time.Millisecond
}

// Load reads the TOML file at path, layers environment overrides on
// top and returns the result. A missing file is not an error: the
// defaults plus environment apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	cfg.sanitize()
	return cfg, nil
}

// applyEnv layers PROMPTBOX_* variables over cfg. Unparseable values
// are ignored.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("PROMPTBOX_PLACEHOLDER"); ok {
		cfg.Editor.Placeholder = v
	}
	if v, ok := os.LookupEnv("PROMPTBOX_HISTORY_FILE"); ok {
		cfg.Editor.HistoryFile = v
	}
	envInt("PROMPTBOX_MAX_LINES", &cfg.Editor.MaxLines)
	envInt("PROMPTBOX_HISTORY_SIZE", &cfg.Editor.HistorySize)
	envInt("PROMPTBOX_UNDO_LIMIT", &cfg.Editor.UndoLimit)
	envInt("PROMPTBOX_UNDO_WINDOW_MS", &cfg.Editor.UndoWindowMS)
	envInt("PROMPTBOX_TAB_WIDTH", &cfg.Editor.TabWidth)
	envInt("PROMPTBOX_VIEWPORT_HEIGHT", &cfg.Editor.ViewportHeight)
}

func envInt(name string, dst *int) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*dst = n
}

// sanitize clamps nonsense values back to the defaults.
func (c *Config) sanitize() {
	def := Default().Editor
	e := &c.Editor
	if e.MaxLines < 0 {
		e.MaxLines = 0
	}
	if e.HistorySize <= 0 {
		e.HistorySize = def.HistorySize
	}
	if e.UndoLimit <= 0 {
		e.UndoLimit = def.UndoLimit
	}
	if e.UndoWindowMS <= 0 {
		e.UndoWindowMS = def.UndoWindowMS
	}
	if e.TabWidth <= 0 {
		e.TabWidth = def.TabWidth
	}
	if e.ViewportHeight <= 0 {
		e.ViewportHeight = def.ViewportHeight
	}
}
