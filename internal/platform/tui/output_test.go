package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLockedOutputSerializesWrites(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	defer f.Close()

	out := NewLockedOutput(f)

	// A frame in progress holds the lock
	out.mu.Lock()
	written := make(chan struct{})
	go func() {
		io.WriteString(out, "\a")
		close(written)
	}()

	select {
	case <-written:
		t.Fatal("bell was written while a frame held the output")
	case <-time.After(50 * time.Millisecond):
	}

	out.File.WriteString("frame")
	out.mu.Unlock()

	select {
	case <-written:
	case <-time.After(5 * time.Second):
		t.Fatal("bell was never written")
	}

	out.Write([]byte("next"))

	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "frame\anext" {
		t.Errorf("output = %q, expected %q", data, "frame\anext")
	}
}
