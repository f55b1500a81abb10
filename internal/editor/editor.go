package editor

import (
	"strings"
	"time"

	"github.com/tuikit/promptbox/internal/clipboard"
	"github.com/tuikit/promptbox/internal/engine/buffer"
	"github.com/tuikit/promptbox/internal/engine/history"
	"github.com/tuikit/promptbox/internal/engine/selection"
	"github.com/tuikit/promptbox/internal/engine/undo"
	"github.com/tuikit/promptbox/internal/renderer/viewport"
)

// Store persists submitted entries. Appends are fired from the submit
// path on their own goroutine and never block or roll back editing
// state; retry policy belongs to the implementation.
type Store interface {
	Append(entry string) error
}

// Editor is the input controller: it owns the buffer, cursor,
// selection, undo, recall and viewport state and maps key events onto
// them. All methods must be called from a single goroutine; each key
// event is handled to completion before the next.
type Editor struct {
	buf    *buffer.Buffer
	sel    selection.Selection
	undo   *undo.Engine
	recall *history.Recall
	scroll *viewport.Scroller
	clip   clipboard.Bridge
	store  Store

	placeholder string
	maxLines    int
	tabWidth    int
	focused     bool

	onSubmit func(string)
	onCopy   func(string)
}

// Option configures an Editor at construction.
type Option func(*options)

type options struct {
	placeholder    string
	maxLines       int
	tabWidth       int
	viewportHeight int
	historySize    int
	undoLimit      int
	undoWindow     time.Duration
	clock          func() time.Time
	clip           clipboard.Bridge
	store          Store
	entries        []string
}

// WithPlaceholder sets the text shown while the buffer is empty and
// the editor is unfocused.
func WithPlaceholder(s string) Option {
	return func(o *options) { o.placeholder = s }
}

// WithMaxLines sets a soft cap on the line count. Newline insertions
// and pastes that would exceed it are refused as no-ops; SetValue is
// exempt.
func WithMaxLines(n int) Option {
	return func(o *options) { o.maxLines = n }
}

// WithTabWidth sets the tab stop width used by the render projection.
func WithTabWidth(n int) Option {
	return func(o *options) { o.tabWidth = n }
}

// WithViewportHeight sets the visible panel height in lines.
func WithViewportHeight(n int) Option {
	return func(o *options) { o.viewportHeight = n }
}

// WithHistorySize sets the recall capacity.
func WithHistorySize(n int) Option {
	return func(o *options) { o.historySize = n }
}

// WithUndoLimit bounds the undo and redo stacks.
func WithUndoLimit(n int) Option {
	return func(o *options) { o.undoLimit = n }
}

// WithUndoWindow sets the undo coalescing interval.
func WithUndoWindow(d time.Duration) Option {
	return func(o *options) { o.undoWindow = d }
}

// WithClock overrides the time source used for undo coalescing.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.clock = now }
}

// WithClipboard injects the clipboard bridge.
func WithClipboard(c clipboard.Bridge) Option {
	return func(o *options) { o.clip = c }
}

// WithStore attaches a persistence collaborator for submitted entries.
func WithStore(s Store) Option {
	return func(o *options) { o.store = s }
}

// WithHistoryEntries seeds recall with previously persisted entries.
// Callers validate entries at the boundary before handing them in.
func WithHistoryEntries(entries []string) Option {
	return func(o *options) { o.entries = entries }
}

// New creates an editor with an empty buffer.
func New(opts ...Option) *Editor {
	o := options{
		tabWidth:       viewport.DefaultTabWidth,
		viewportHeight: viewport.DefaultHeight,
		historySize:    history.DefaultCapacity,
		undoLimit:      undo.DefaultMaxEntries,
		undoWindow:     undo.DefaultWindow,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var undoOpts []undo.Option
	if o.clock != nil {
		undoOpts = append(undoOpts, undo.WithClock(o.clock))
	}
	undoOpts = append(undoOpts, undo.WithWindow(o.undoWindow))

	clip := o.clip
	if clip == nil {
		clip = clipboard.NewMemory()
	}

	e := &Editor{
		buf:         buffer.New(),
		undo:        undo.New([]string{""}, o.undoLimit, undoOpts...),
		recall:      history.New(o.historySize),
		scroll:      viewport.NewScroller(o.viewportHeight),
		clip:        clip,
		store:       o.store,
		placeholder: o.placeholder,
		maxLines:    o.maxLines,
		tabWidth:    o.tabWidth,
	}
	if len(o.entries) > 0 {
		e.recall.SetEntries(o.entries)
	}
	return e
}

// OnSubmit registers the callback receiving finalized values. The
// buffer is already cleared when it fires.
func (e *Editor) OnSubmit(fn func(string)) {
	e.onSubmit = fn
}

// OnCopy registers the callback receiving copied text, for hosts that
// bridge to a real OS clipboard themselves.
func (e *Editor) OnCopy(fn func(string)) {
	e.onCopy = fn
}

// Focus sets the focus state. Key events are ignored entirely while
// unfocused.
func (e *Editor) Focus(focused bool) {
	e.focused = focused
}

// Focused returns the focus state.
func (e *Editor) Focused() bool {
	return e.focused
}

// Value returns the buffer as a single "\n"-joined string.
func (e *Editor) Value() string {
	return e.buf.Value()
}

// SetValue replaces the buffer content, placing the cursor at the end.
// It counts as an edit: browsing ends and an undo snapshot may be
// taken. The soft line cap does not apply; the host set the value
// deliberately.
func (e *Editor) SetValue(s string) {
	e.beginEdit()
	e.buf.SetValue(s)
	e.sel.Clear()
	e.syncScroll()
}

// Clear resets the buffer to a single empty line.
func (e *Editor) Clear() {
	e.beginEdit()
	e.buf.Clear()
	e.sel.Clear()
	e.scroll.Reset()
}

// HistoryEntries returns the recall entries, oldest first. Hosts use
// it to persist history across sessions.
func (e *Editor) HistoryEntries() []string {
	return e.recall.Entries()
}

// Position returns the current cursor position.
func (e *Editor) Position() buffer.Position {
	return e.buf.Position()
}

// Resize changes the visible panel height.
func (e *Editor) Resize(height int) {
	e.scroll.SetHeight(height)
	e.syncScroll()
}

// Snapshot returns the pull-based render state. While the buffer is
// empty and the editor unfocused, the configured placeholder text is
// projected instead, with the cursor hidden.
func (e *Editor) Snapshot() viewport.Snapshot {
	if e.placeholder != "" && !e.focused && e.buf.IsEmpty() {
		snap := viewport.Project([]string{e.placeholder}, buffer.Position{}, false,
			buffer.Position{}, buffer.Position{}, 0, e.scroll.Height(), e.tabWidth)
		snap.CursorRow = -1
		snap.Placeholder = true
		return snap
	}
	start, end := e.sel.Normalize()
	return viewport.Project(e.buf.Lines(), e.buf.Position(), e.sel.IsActive(),
		start, end, e.scroll.Top(), e.scroll.Height(), e.tabWidth)
}

// submit finalizes the current value: record it in recall, clear all
// editing state and emit the trimmed string.
func (e *Editor) submit() {
	value := strings.TrimSpace(e.buf.Value())

	e.recall.Append(value)
	e.recall.Reset()
	e.buf.Clear()
	e.sel.Clear()
	e.undo.Reset([]string{""})
	e.scroll.Reset()

	if value != "" && e.store != nil {
		// Fire and forget: a persistence failure must not touch
		// in-memory state, and retries belong to the store.
		store := e.store
		go func() { _ = store.Append(value) }()
	}
	if e.onSubmit != nil {
		e.onSubmit(value)
	}
}

// beginEdit runs the shared pre-mutation policy: editing a recalled
// entry ends browsing, and the undo engine decides whether this edit
// starts a new undo step.
func (e *Editor) beginEdit() {
	e.recall.Stop()
	e.undo.MaybeSave(e.buf.Lines())
}

// syncScroll re-derives the visible window after a cursor move.
func (e *Editor) syncScroll() {
	e.scroll.ClampTo(e.buf.LineCount())
	e.scroll.Follow(e.buf.Position().Line)
}
