package tui

import (
	"os"
	"sync"
)

// LockedOutput is a terminal file whose writes are serialized. The program
// renders through it, so bells written from the event loop land between
// frames rather than inside an escape sequence.
//
// Embedding *os.File keeps Fd available for terminal size detection.
type LockedOutput struct {
	*os.File
	mu sync.Mutex
}

// NewLockedOutput wraps f.
func NewLockedOutput(f *os.File) *LockedOutput {
	return &LockedOutput{File: f}
}

// Write writes p while holding the lock.
func (o *LockedOutput) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.File.Write(p)
}

// WriteString writes s while holding the lock.
func (o *LockedOutput) WriteString(s string) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.File.WriteString(s)
}
