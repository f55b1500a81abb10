// Package histfile persists submitted history entries to a JSON file.
//
// It sits on the editor's asynchronous boundary: appends are
// fire-and-forget and a failed write never touches editor state. Data
// read back is untrusted collaborator input: every entry is validated
// and malformed ones are dropped, never merged.
package histfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// MaxEntries bounds the persisted list; older entries are trimmed on
// write.
const MaxEntries = 1000

type fileFormat struct {
	Session string   `json:"session"`
	Entries []string `json:"entries"`
}

// Store reads and appends history entries at a fixed path. It is safe
// for concurrent use; the editor fires Append on its own goroutine.
type Store struct {
	mu      sync.Mutex
	path    string
	session string
}

// New creates a store for path. Each store instance gets a fresh
// session id, recorded in the file it writes.
func New(path string) *Store {
	return &Store{
		path:    path,
		session: uuid.NewString(),
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the validated entries from the backing file, oldest
// first. A missing file is an empty history; a malformed file or
// malformed individual entries are dropped rather than returned.
func (s *Store) Load() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading history file %s: %w", s.path, err)
	}
	return validate(data), nil
}

// validate extracts well-formed entries from untrusted file content.
func validate(data []byte) []string {
	if !gjson.ValidBytes(data) {
		return nil
	}
	raw := gjson.GetBytes(data, "entries")
	if !raw.IsArray() {
		return nil
	}
	var entries []string
	raw.ForEach(func(_, value gjson.Result) bool {
		if value.Type == gjson.String && value.Str != "" {
			entries = append(entries, value.Str)
		}
		return true
	})
	return entries
}

// Append adds entry to the backing file, creating it if needed. The
// whole file is rewritten through a temp file and rename so a crashed
// write can never leave a truncated history behind.
func (s *Store) Append(entry string) error {
	if entry == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []string
	if data, err := os.ReadFile(s.path); err == nil {
		entries = validate(data)
	}
	entries = append(entries, entry)
	if len(entries) > MaxEntries {
		entries = entries[len(entries)-MaxEntries:]
	}

	data, err := json.Marshal(fileFormat{Session: s.session, Entries: entries})
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating history dir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("creating temp history file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing history file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing history file: %w", err)
	}
	return nil
}
