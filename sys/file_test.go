package sys

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// recordingFile delegates to the os package and records which methods were
// called.
type recordingFile struct {
	CreateCalled   bool
	OpenCalled     bool
	OpenFileCalled bool
}

func (m *recordingFile) Create(name string) (*os.File, error) {
	m.CreateCalled = true
	return os.Create(name)
}

func (m *recordingFile) Open(name string) (*os.File, error) {
	m.OpenCalled = true
	return os.Open(name)
}

func (m *recordingFile) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	m.OpenFileCalled = true
	return os.OpenFile(name, flag, perm)
}

func TestCreateAndOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.blf")

	w, err := Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	want := []byte("LOGG and some bytes")
	if _, err := w.Write(want); err != nil {
		w.Close()
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := w.Seek(0, io.SeekStart); err != nil {
		w.Close()
		t.Fatalf("Seek failed: %v", err)
	}
	if _, err := w.Write([]byte("l")); err != nil {
		w.Close()
		t.Fatalf("Write after seek failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	want[0] = 'l'
	if !bytes.Equal(got, want) {
		t.Errorf("content mismatch: got %q, want %q", got, want)
	}
	if r.Name() != path {
		t.Errorf("Name() = %q, want %q", r.Name(), path)
	}
}

func TestSetDefaultFile(t *testing.T) {
	mock := &recordingFile{}
	SetDefaultFile(mock)
	t.Cleanup(func() { SetDefaultFile(NewFile()) })

	path := filepath.Join(t.TempDir(), "mock.blf")
	f, err := Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	f.Close()
	if !mock.OpenFileCalled {
		t.Error("expected OpenFile to be called through the default File")
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.blf")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open of a missing file: got %v, want os.ErrNotExist", err)
	}
}

func TestDebugMode_TracksHandles(t *testing.T) {
	SetDebugMode(true)
	t.Cleanup(func() { SetDebugMode(false) })

	path := filepath.Join(t.TempDir(), "debug.blf")
	f, err := Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, ok := f.(*DebugFile); !ok {
		t.Fatalf("expected *DebugFile, got %T", f)
	}

	found := false
	for _, name := range OpenHandles() {
		if name == path {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %s in OpenHandles while open", path)
	}

	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	for _, name := range OpenHandles() {
		if name == path {
			t.Errorf("%s still listed after Close", path)
		}
	}
	if err := f.Close(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("second Close: got %v, want os.ErrClosed", err)
	}
}
