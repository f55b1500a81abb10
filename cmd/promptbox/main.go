// Command promptbox runs a minimal chat transcript around the input
// widget, demonstrating the embedding contract: tcell key events in,
// render snapshots out.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/tuikit/promptbox/internal/clipboard"
	"github.com/tuikit/promptbox/internal/config"
	"github.com/tuikit/promptbox/internal/editor"
	"github.com/tuikit/promptbox/internal/history/histfile"
	"github.com/tuikit/promptbox/internal/input/key"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a promptbox.toml")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("promptbox %s\n", version)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	opts := []editor.Option{
		editor.WithPlaceholder(cfg.Editor.Placeholder),
		editor.WithMaxLines(cfg.Editor.MaxLines),
		editor.WithHistorySize(cfg.Editor.HistorySize),
		editor.WithUndoLimit(cfg.Editor.UndoLimit),
		editor.WithUndoWindow(cfg.Editor.UndoWindow()),
		editor.WithTabWidth(cfg.Editor.TabWidth),
		editor.WithViewportHeight(cfg.Editor.ViewportHeight),
		editor.WithClipboard(clipboard.NewSystem()),
	}
	if cfg.Editor.HistoryFile != "" {
		store := histfile.New(cfg.Editor.HistoryFile)
		entries, err := store.Load()
		if err != nil {
			// History is a convenience; start without it.
			log.Printf("promptbox: history unavailable: %v", err)
		}
		opts = append(opts,
			editor.WithStore(store),
			editor.WithHistoryEntries(entries),
		)
	}

	ed := editor.New(opts...)
	ed.Focus(true)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnablePaste()

	var transcript []string
	ed.OnSubmit(func(value string) {
		if value == "" {
			return
		}
		transcript = append(transcript, "you  | "+value)
		transcript = append(transcript, "echo | "+value)
	})

	inputHeight := cfg.Editor.ViewportHeight
	for {
		draw(screen, transcript, ed, inputHeight)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventPaste:
			// Bracketed paste arrives as individual rune events
			// between the markers; nothing to do here.
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlQ {
				return 0
			}
			if ev.Key() == tcell.KeyEscape {
				ed.Focus(!ed.Focused())
				continue
			}
			ed.HandleKey(key.FromTcell(ev))
		}
	}
}

func draw(screen tcell.Screen, transcript []string, ed *editor.Editor, inputHeight int) {
	screen.Clear()
	width, height := screen.Size()

	chatHeight := height - inputHeight - 1
	if chatHeight < 0 {
		chatHeight = 0
	}

	// Transcript pane, most recent lines pinned to the separator.
	start := 0
	if len(transcript) > chatHeight {
		start = len(transcript) - chatHeight
	}
	for row, line := range transcript[start:] {
		drawText(screen, 0, row, width, line, tcell.StyleDefault)
	}

	// Separator.
	sepStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 0; x < width; x++ {
		screen.SetContent(x, chatHeight, tcell.RuneHLine, nil, sepStyle)
	}

	// Input panel.
	snap := ed.Snapshot()
	inputTop := chatHeight + 1
	style := tcell.StyleDefault
	if snap.Placeholder {
		style = style.Foreground(tcell.ColorGray)
	}
	for row, line := range snap.Lines {
		drawText(screen, 0, inputTop+row, width, line, style)
	}
	selStyle := tcell.StyleDefault.Reverse(true)
	for _, span := range snap.Selection {
		line := ""
		if span.Row < len(snap.Lines) {
			line = snap.Lines[span.Row]
		}
		runes := []rune(line)
		for col := span.StartCol; col < span.EndCol && col < len(runes); col++ {
			screen.SetContent(col, inputTop+span.Row, runes[col], nil, selStyle)
		}
	}
	if ed.Focused() && snap.CursorRow >= 0 {
		screen.ShowCursor(snap.CursorCol, inputTop+snap.CursorRow)
	} else {
		screen.HideCursor()
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= maxWidth {
			break
		}
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}
