// Package clipboard defines the injected clipboard capability used for
// cut, copy and paste.
//
// The engine never talks to the OS clipboard directly; a Bridge is
// passed at construction so multiple editor instances cannot clobber a
// shared global slot and tests can substitute an in-memory store.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Bridge is the external clipboard surface. Get reports ok false when
// no payload is available; Set failures are swallowed by
// implementations so they cannot corrupt editing state.
type Bridge interface {
	Get() (value string, ok bool)
	Set(value string)
}

// Memory is an in-process Bridge. It is the default for tests and for
// hosts that bridge to a terminal clipboard themselves.
type Memory struct {
	mu    sync.Mutex
	value string
	set   bool
}

// NewMemory creates an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Get returns the stored payload.
func (m *Memory) Get() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, m.set
}

// Set stores a payload.
func (m *Memory) Set(value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	m.set = true
}

// System is a Bridge backed by the OS clipboard. Read and write
// failures degrade to an empty read and a dropped write.
type System struct{}

// NewSystem creates an OS-backed clipboard bridge.
func NewSystem() *System {
	return &System{}
}

// Get reads the OS clipboard.
func (s *System) Get() (string, bool) {
	value, err := clipboard.ReadAll()
	if err != nil {
		return "", false
	}
	return value, true
}

// Set writes the OS clipboard.
func (s *System) Set(value string) {
	// Write failure leaves the previous payload in place; the editing
	// state machine must not see it.
	_ = clipboard.WriteAll(value)
}
